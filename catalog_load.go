package orm

import (
	"fmt"

	"github.com/ichaly/ideabase/log"
	"github.com/ichaly/ideabase/orm/internal"
	"github.com/ichaly/ideabase/orm/metadata"
	"github.com/ichaly/ideabase/orm/protocol"
	"github.com/ichaly/ideabase/utl"
	"github.com/samber/lo"
)

// JoinLoader 从配置加载连接表声明
// 实现metadata.Loader接口,驱动Linker完成全部声明后注册到目录
type JoinLoader struct {
	cfg    *internal.Config
	linker *Linker
}

// NewJoinLoader 创建连接表加载器
func NewJoinLoader(cfg *internal.Config, linker *Linker) *JoinLoader {
	return &JoinLoader{cfg: cfg, linker: linker}
}

func (my *JoinLoader) Name() string  { return metadata.LoaderJoin }
func (my *JoinLoader) Priority() int { return 100 }

// Support 判断是否有连接表配置
func (my *JoinLoader) Support() bool {
	return my.cfg != nil && len(my.cfg.Metadata.Joins) > 0
}

// Load 按配置键有序声明连接表,首个失败即终止
func (my *JoinLoader) Load(h metadata.Hoster) error {
	log.Info().Int("joins", len(my.cfg.Metadata.Joins)).Msg("开始从配置加载连接表")

	for _, name := range utl.SortKeys(my.cfg.Metadata.Joins) {
		jc := my.cfg.Metadata.Joins[name]
		if jc == nil {
			continue
		}
		if err := my.loadJoin(h, name, jc); err != nil {
			return err
		}
	}
	return nil
}

// loadJoin 声明单个连接表
// 配置键作为连接类的限定名,命名空间优先级: 连接项配置 > 全局配置 > 限定名首段
func (my *JoinLoader) loadJoin(h metadata.Hoster, name string, jc *internal.JoinConfig) error {
	self := protocol.ParseRef(name)
	join := Join{
		LeftClass:         jc.LeftClass,
		RightClass:        jc.RightClass,
		LeftMethod:        jc.LeftMethod,
		RightMethod:       jc.RightMethod,
		LeftMethodPlural:  jc.LeftMethodPlural,
		RightMethodPlural: jc.RightMethodPlural,
		SelfMethod:        jc.SelfMethod,
		SelfMethodPlural:  jc.SelfMethodPlural,
		Namespace:         lo.Ternary(jc.Namespace != "", jc.Namespace, my.cfg.Metadata.Namespace),
	}

	class := &protocol.Class{
		Name:        self.Name,
		Namespace:   self.Namespace,
		IsThrough:   true,
		Description: jc.Description,
	}

	join, err := my.linker.DeclareJoinTable(class, self, join)
	if err != nil {
		return fmt.Errorf("声明连接表[%s]失败: %w", name, err)
	}
	if err = h.PutNode(class); err != nil {
		return fmt.Errorf("注册连接表[%s]失败: %w", name, err)
	}

	// 反向关系按配置选装
	if jc.HasMany {
		if err = my.linker.GenerateHasMany(self, join); err != nil {
			return fmt.Errorf("声明反向一对多[%s]失败: %w", name, err)
		}
	}
	if jc.ManyToMany {
		if err = my.linker.GenerateManyToMany(self, join); err != nil {
			return fmt.Errorf("声明反向多对多[%s]失败: %w", name, err)
		}
	}

	log.Debug().Str("class", class.Name).Str("table", class.Table).Msg("连接表声明完成")
	return nil
}
