package orm

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/iancoleman/strcase"
	"github.com/ichaly/ideabase/log"
	"github.com/ichaly/ideabase/orm/internal"
	"github.com/ichaly/ideabase/orm/metadata"
	"github.com/ichaly/ideabase/orm/protocol"
	"github.com/ichaly/ideabase/std"
	"github.com/jinzhu/inflection"
)

// Catalog 连接表元数据目录
// 承载所有已声明的类与连接表,并作为反向声明的父类解析器
type Catalog struct {
	k      *std.Konfig
	cfg    *internal.Config
	linker *Linker

	// 统一索引: 支持类名、限定名、表名查找
	Nodes   map[string]*protocol.Class `json:"nodes"`
	Version string                     `json:"version"`
}

// CatalogOption 用于自定义Loader注册与移除
type CatalogOption func(*catalogOptions)

type catalogOptions struct {
	loaders []metadata.Loader
	linker  []LinkerOption
}

// WithLoader 添加或替换Loader
func WithLoader(loader metadata.Loader) CatalogOption {
	return func(opts *catalogOptions) {
		if loader == nil {
			return
		}
		// 替换同名Loader
		for i, l := range opts.loaders {
			if l.Name() == loader.Name() {
				opts.loaders[i] = loader
				return
			}
		}
		opts.loaders = append(opts.loaders, loader)
	}
}

// WithoutLoader 移除指定名称的Loader
func WithoutLoader(names ...string) CatalogOption {
	return func(opts *catalogOptions) {
		for _, name := range names {
			for i := 0; i < len(opts.loaders); {
				if opts.loaders[i].Name() == name {
					opts.loaders = append(opts.loaders[:i], opts.loaders[i+1:]...)
				} else {
					i++
				}
			}
		}
	}
}

// WithLinker 追加Linker选项,如关闭转换能力或替换解析器
func WithLinker(opts ...LinkerOption) CatalogOption {
	return func(o *catalogOptions) {
		o.linker = append(o.linker, opts...)
	}
}

// HookedLoader 装饰器，支持afterLoad钩子
// 用于Loader加载后自动执行额外操作（如保存文件）
type HookedLoader struct {
	metadata.Loader
	afterLoad func(h metadata.Hoster) error
}

func (my *HookedLoader) Load(h metadata.Hoster) error {
	err := my.Loader.Load(h)
	if err != nil {
		return err
	}
	if my.afterLoad != nil {
		return my.afterLoad(h)
	}
	return nil
}

// NewCatalog 组装目录,Loader按优先级依次执行
func NewCatalog(k *std.Konfig, opts ...CatalogOption) (*Catalog, error) {
	cfg := &internal.Config{}
	k.SetDefault("metadata.enable-camel-case", true)
	k.SetDefault("metadata.class-prefix", []string{})
	k.SetDefault("metadata.package", "model")

	if err := k.Unmarshal(cfg); err != nil {
		return nil, err
	}

	my := &Catalog{
		k:       k,
		cfg:     cfg,
		Nodes:   make(map[string]*protocol.Class),
		Version: time.Now().Format("20060102150405"),
	}
	// 目录自身充当父类解析器
	my.linker = NewLinker(WithResolver(my))

	// 默认Loader注册,JoinLoader用HookedLoader包装,dev模式下自动保存
	afterLoad := func(h metadata.Hoster) error {
		if cfg.Mode == "dev" {
			path := filepath.Join(cfg.Root, "cfg", "catalog.json")
			if meta, ok := h.(*Catalog); ok {
				return meta.saveToFile(path)
			}
		}
		return nil
	}
	defaultLoaders := []metadata.Loader{
		metadata.NewFileLoader(cfg),
		metadata.NewClassLoader(cfg),
		&HookedLoader{NewJoinLoader(cfg, my.linker), afterLoad},
	}
	options := &catalogOptions{loaders: defaultLoaders}
	// 应用自定义选项
	for _, opt := range opts {
		opt(options)
	}
	for _, opt := range options.linker {
		opt(my.linker)
	}
	// 按优先级排序
	loaders := options.loaders
	if len(loaders) > 1 {
		// 升序，优先级高的后加载
		for i := 0; i < len(loaders)-1; i++ {
			for j := i + 1; j < len(loaders); j++ {
				if loaders[i].Priority() > loaders[j].Priority() {
					loaders[i], loaders[j] = loaders[j], loaders[i]
				}
			}
		}
	}
	// 依次执行Loader
	for _, loader := range loaders {
		if loader.Support() {
			if err := loader.Load(my); err != nil {
				log.Warn().Err(err).Str("loader", loader.Name()).Msg("加载器执行失败")
			}
		}
	}
	// 统一关系处理
	my.processRelations()
	return my, nil
}

// Linker 返回目录内置的连接表声明器
func (my *Catalog) Linker() *Linker {
	return my.linker
}

// Catalog 实现metadata.Hoster接口
func (my *Catalog) PutNode(node *protocol.Class) error {
	if node == nil || node.Name == "" {
		return nil
	}

	// 1. 处理驼峰命名
	if my.cfg != nil && my.cfg.Metadata.EnableCamelCase {
		tableName := node.Table

		// 处理表名前缀
		for _, prefix := range my.cfg.Metadata.ClassPrefix {
			if prefix != "" && strings.HasPrefix(tableName, prefix) {
				tableName = strings.TrimPrefix(tableName, prefix)
				break // 一旦找到匹配的前缀就停止,否则可能会导致多次处理
			}
		}

		// 处理类名大驼峰（复数转单数）
		if node.Name == node.Table {
			node.Name = strcase.ToCamel(inflection.Singular(tableName))
		}

		// 处理字段小驼峰
		fields := make(map[string]*protocol.Field, len(node.Fields))
		for _, field := range node.Fields {
			if field.Column != "" && field.Name == field.Column {
				field.Name = strcase.ToLowerCamel(field.Column)
			}
			fields[field.Name] = field
			if field.Column != "" && field.Column != field.Name {
				fields[field.Column] = field
			}
		}
		node.Fields = fields
	}

	// 2. 处理索引: 类名、限定名与表名
	my.Nodes[node.Name] = node
	if ref := node.Ref(); ref.Namespace != "" {
		my.Nodes[ref.Qualified()] = node
	}
	if node.Table != "" && node.Table != node.Name {
		my.Nodes[node.Table] = node
	}

	return nil
}

func (my *Catalog) GetNode(name string) (*protocol.Class, bool) {
	n, ok := my.Nodes[name]
	return n, ok
}

func (my *Catalog) SetVersion(version string) {
	my.Version = version
}

// ResolveClass 按引用解析类的声明面,实现protocol.Resolver
func (my *Catalog) ResolveClass(ref protocol.ClassRef) (protocol.Schema, bool) {
	if node, ok := my.FindClass(ref.Qualified()); ok {
		return node, true
	}
	return nil, false
}

// FindClass 根据类名、限定名或表名查找类
// 限定名未命中时回退到本地类名,兼容未声明命名空间的父类
func (my *Catalog) FindClass(name string) (*protocol.Class, bool) {
	if node, ok := my.Nodes[name]; ok {
		return node, true
	}
	if ref := protocol.ParseRef(name); ref.Namespace != "" {
		if node, ok := my.Nodes[ref.Name]; ok {
			return node, true
		}
	}
	return nil, false
}

// FindField 根据类名和字段名查找字段
func (my *Catalog) FindField(className, fieldName string) (*protocol.Field, bool) {
	if node, ok := my.FindClass(className); ok {
		if field := node.Fields[fieldName]; field != nil {
			return field, true
		}
	}
	return nil, false
}

// FindRelation 获取关系定义(支持字段名或列名)
func (my *Catalog) FindRelation(className, nameOrColumn string) (*protocol.Relation, bool) {
	if field, ok := my.FindField(className, nameOrColumn); ok {
		return field.Relation, field.Relation != nil
	}
	return nil, false
}

// TableName 获取类的表名
func (my *Catalog) TableName(className string) (string, bool) {
	if node, ok := my.FindClass(className); ok {
		return node.Table, len(node.Table) > 0
	}
	return "", false
}

// ColumnName 获取字段的列名
func (my *Catalog) ColumnName(className, fieldName string) (string, bool) {
	if field, ok := my.FindField(className, fieldName); ok {
		return field.Column, len(field.Column) > 0
	}
	return "", false
}

// processRelations 统一补全关系信息
// 只补全来源与目标并链接反向引用,不创建新的访问器字段,
// 反向关系声明始终由显式调用产生
func (my *Catalog) processRelations() {
	log.Debug().Msg("处理所有关系信息")

	for className, class := range my.Nodes {
		// 跳过表名与限定名索引，只处理类名索引
		if className != class.Name {
			continue
		}

		for fieldName, field := range class.Fields {
			// 跳过非主字段或没有关系的字段
			if fieldName != field.Name || field.Relation == nil {
				continue
			}

			// 获取并补充关系信息
			relation := field.Relation
			if relation.SourceClass == "" {
				relation.SourceClass = class.Ref().Qualified()
			}
			if relation.SourceField == "" {
				relation.SourceField = field.Name
			}

			// 查找目标类
			target, ok := my.FindClass(relation.TargetClass)
			if !ok {
				log.Warn().Str("class", class.Name).Str("field", field.Name).
					Str("targetClass", relation.TargetClass).Msg("关系目标类不存在")
				continue
			}

			// 从属关系的目标字段缺省取目标类的首个主键
			if relation.TargetField == "" && relation.Type == protocol.BELONGS_TO && len(target.PrimaryKeys) > 0 {
				relation.TargetField = target.PrimaryKeys[0]
			}

			// 链接已存在的反向关系
			my.linkReverse(target, relation)
		}
	}

	log.Debug().Msg("关系处理完成")
}

// linkReverse 在目标类中寻找指回源类的关系并互相链接
func (my *Catalog) linkReverse(target *protocol.Class, relation *protocol.Relation) {
	if relation.Reverse != nil {
		return
	}
	for name, field := range target.Fields {
		if name != field.Name || field.Relation == nil || field.Relation == relation {
			continue
		}
		reverse := field.Relation
		if reverse.Type != relation.Type.Reverse() || reverse.Reverse != nil {
			continue
		}
		if !sameClass(reverse.TargetClass, relation.SourceClass) {
			continue
		}
		relation.Reverse = reverse
		reverse.Reverse = relation
		return
	}
}

// sameClass 比较两个类限定名是否指向同一类,允许一侧缺省命名空间
func sameClass(a, b string) bool {
	ra, rb := protocol.ParseRef(a), protocol.ParseRef(b)
	if ra.Name != rb.Name {
		return false
	}
	return ra.Namespace == rb.Namespace || ra.Namespace == "" || rb.Namespace == ""
}
