package metadata

import (
	"github.com/duke-git/lancet/v2/slice"
	"github.com/huandu/go-clone"
	"github.com/ichaly/ideabase/log"
	"github.com/ichaly/ideabase/orm/internal"
	"github.com/ichaly/ideabase/orm/protocol"
	"github.com/ichaly/ideabase/utl"
	"github.com/samber/lo"
)

// ClassLoader 从配置加载父类定义
// 实现Loader接口
type ClassLoader struct {
	cfg *internal.Config
}

// NewClassLoader 创建类配置加载器
func NewClassLoader(cfg *internal.Config) *ClassLoader {
	return &ClassLoader{cfg: cfg}
}

func (my *ClassLoader) Name() string  { return LoaderClass }
func (my *ClassLoader) Priority() int { return 80 }

// Support 判断是否有类配置
func (my *ClassLoader) Support() bool {
	return my.cfg != nil && len(my.cfg.Metadata.Classes) > 0
}

// Load 按类名有序加载类定义
func (my *ClassLoader) Load(h Hoster) error {
	log.Info().Int("classes", len(my.cfg.Metadata.Classes)).Msg("开始从配置加载类定义")

	// 表名到已构建类的映射,同表的后续定义按别名克隆
	built := make(map[string]*protocol.Class)

	for _, name := range utl.SortKeys(my.cfg.Metadata.Classes) {
		cc := my.cfg.Metadata.Classes[name]
		if cc == nil {
			continue
		}
		if err := h.PutNode(my.buildClass(name, cc, built)); err != nil {
			return err
		}
	}
	return nil
}

// buildClass 构建类定义,同表的已有定义作为克隆基类
func (my *ClassLoader) buildClass(name string, cc *internal.ClassConfig, built map[string]*protocol.Class) *protocol.Class {
	table := lo.Ternary(cc.Table != "", cc.Table, name)

	// 同表别名: 深克隆基类定义再覆盖名称,关系字段可能含环,必须用Slowly
	if base, ok := built[table]; ok {
		alias := clone.Slowly(base).(*protocol.Class)
		alias.Name = name
		if cc.Description != "" {
			alias.Description = cc.Description
		}
		log.Debug().Str("class", name).Str("base", base.Name).Msg("按别名克隆类定义")
		return alias
	}

	class := &protocol.Class{
		Name:        name,
		Table:       table,
		Virtual:     cc.Virtual,
		Description: cc.Description,
		PrimaryKeys: cc.PrimaryKeys,
		Fields:      make(map[string]*protocol.Field),
	}

	for _, column := range utl.SortKeys(cc.Columns) {
		col := cc.Columns[column]
		if col == nil {
			continue
		}
		class.AddField(&protocol.Field{
			Name:        lo.Ternary(col.Name != "", col.Name, column),
			Column:      column,
			Type:        col.Type,
			Nullable:    col.IsNullable,
			IsNumeric:   col.IsNumeric,
			IsPrimary:   col.IsPrimary,
			IsUnique:    col.IsUnique,
			Description: col.Description,
		})
		// 列上的主键标记并入主键列表
		if col.IsPrimary && !slice.Contain(class.PrimaryKeys, column) {
			class.PrimaryKeys = append(class.PrimaryKeys, column)
		}
	}

	built[table] = class
	return class
}
