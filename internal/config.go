package internal

import "github.com/ichaly/ideabase/std"

// Config 表示连接表模块配置
type Config struct {
	std.Config `mapstructure:",squash"`
	Metadata   MetadataConfig `mapstructure:"metadata"`
}

// MetadataConfig 表示元数据配置
type MetadataConfig struct {
	// 父类所在命名空间的默认值
	Namespace string `mapstructure:"namespace"`

	// 目录文件路径(支持{mode}占位符)
	File string `mapstructure:"file"`

	// 生成模型源码所属的包名
	Package string `mapstructure:"package"`

	// 是否启用驼峰命名(配置类名规范化)
	EnableCamelCase bool `mapstructure:"enable-camel-case"`

	// 类名前缀(用于去除)
	ClassPrefix []string `mapstructure:"class-prefix"`

	// 类定义映射(key: 类名)
	Classes map[string]*ClassConfig `mapstructure:"classes"`

	// 连接表定义映射(key: 连接类限定名)
	Joins map[string]*JoinConfig `mapstructure:"joins"`
}

// ClassConfig 表示类配置
type ClassConfig struct {
	// 表名
	Table string `mapstructure:"table"`

	// 描述
	Description string `mapstructure:"description"`

	// 主键列表
	PrimaryKeys []string `mapstructure:"primary_keys"`

	// 列定义映射(key: 列名)
	Columns map[string]*ColumnConfig `mapstructure:"columns"`

	// 是否虚拟类
	Virtual bool `mapstructure:"virtual"`
}

// ColumnConfig 表示列配置
type ColumnConfig struct {
	// 转换后的字段名
	Name string `mapstructure:"name"`

	// 数据类型
	Type string `mapstructure:"type"`

	// 描述
	Description string `mapstructure:"description"`

	// 是否主键
	IsPrimary bool `mapstructure:"is_primary"`

	// 是否可空
	IsNullable bool `mapstructure:"is_nullable"`

	// 是否数值类型
	IsNumeric bool `mapstructure:"is_numeric"`

	// 是否唯一
	IsUnique bool `mapstructure:"is_unique"`
}

// JoinConfig 表示连接表配置
type JoinConfig struct {
	// 左侧类名(必填)
	LeftClass string `mapstructure:"left_class"`

	// 右侧类名(必填)
	RightClass string `mapstructure:"right_class"`

	// 左侧访问器名,缺省由类名推导
	LeftMethod string `mapstructure:"left_method"`

	// 右侧访问器名,缺省由类名推导
	RightMethod string `mapstructure:"right_method"`

	// 左侧复数访问器名
	LeftMethodPlural string `mapstructure:"left_method_plural"`

	// 右侧复数访问器名
	RightMethodPlural string `mapstructure:"right_method_plural"`

	// 父类回指连接表的访问器名
	SelfMethod string `mapstructure:"self_method"`

	// 父类回指连接表的复数访问器名
	SelfMethodPlural string `mapstructure:"self_method_plural"`

	// 命名空间,缺省取连接类限定名的首段
	Namespace string `mapstructure:"namespace"`

	// 描述
	Description string `mapstructure:"description"`

	// 是否在父类上生成一对多反向关系
	HasMany bool `mapstructure:"has_many"`

	// 是否在父类上生成多对多反向关系
	ManyToMany bool `mapstructure:"many_to_many"`
}
