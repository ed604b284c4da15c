package orm

import (
	"gorm.io/gorm/schema"
)

// Namer 基于目录的GORM命名策略
// 已在目录中声明的表优先使用声明的名字,其余命名退回默认策略
type Namer struct {
	schema.NamingStrategy
	meta *Catalog
}

// NewNamer 创建命名策略,可直接赋给gorm.Config.NamingStrategy
func NewNamer(meta *Catalog) *Namer {
	return &Namer{meta: meta}
}

// JoinTableName 连接表名优先取目录中的声明
func (my *Namer) JoinTableName(joinTable string) string {
	if class, ok := my.meta.FindClass(joinTable); ok && class.IsThrough {
		return class.Table
	}
	return my.NamingStrategy.JoinTableName(joinTable)
}

// TableName 普通表名优先取目录中的声明
func (my *Namer) TableName(table string) string {
	if class, ok := my.meta.FindClass(table); ok && class.Table != "" {
		return class.Table
	}
	return my.NamingStrategy.TableName(table)
}
