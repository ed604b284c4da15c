package protocol

import "github.com/ichaly/ideabase/utl"

// Class 表示一个数据类/表的完整定义
type Class struct {
	Name        string            `json:"name"`                // 类名
	Table       string            `json:"table"`               // 表名
	Namespace   string            `json:"namespace,omitempty"` // 所属命名空间
	Virtual     bool              `json:"virtual"`             // 是否为虚拟类
	PrimaryKeys []string          `json:"primaryKeys"`         // 主键列表
	Description string            `json:"description"`         // 描述信息
	Fields      map[string]*Field `json:"fields"`              // 字段映射表(包含字段名和列名的索引)
	IsThrough   bool              `json:"isThrough"`           // 是否为连接表
}

// Ref 返回类的结构化引用
func (my *Class) Ref() ClassRef {
	return ClassRef{Namespace: my.Namespace, Name: my.Name}
}

// AddField 添加字段到类中
func (my *Class) AddField(field *Field) {
	if my.Fields == nil {
		my.Fields = make(map[string]*Field)
	}

	// 添加字段名索引
	my.Fields[field.Name] = field

	// 如果列名与字段名不同，添加列名索引
	if field.Column != "" && field.Column != field.Name {
		my.Fields[field.Column] = field
	}
}

// DelField 移除字段
func (my *Class) DelField(field *Field) {
	if field == nil {
		return
	}
	// 删除字段名索引
	delete(my.Fields, field.Name)

	// 如果列名与字段名不同，删除列名索引
	if field.Column != "" && field.Column != field.Name {
		delete(my.Fields, field.Column)
	}
}

// Class 实现Schema接口,声明结果直接落在元数据上

// SetTable 声明表名
func (my *Class) SetTable(table string) {
	my.Table = table
}

// AddColumns 声明列
func (my *Class) AddColumns(fields ...*Field) {
	for _, field := range fields {
		my.AddField(field)
	}
}

// BelongsTo 声明从属关系,同时生成虚拟访问器字段
func (my *Class) BelongsTo(accessor string, target ClassRef, foreignKey string) {
	my.AddField(&Field{
		Name:        accessor,
		Type:        target.Name,
		Virtual:     true,
		Description: "关联的" + target.Name,
		Relation: &Relation{
			Type:        BELONGS_TO,
			SourceClass: my.Ref().Qualified(),
			SourceField: foreignKey,
			TargetClass: target.Qualified(),
		},
	})
}

// HasMany 声明一对多关系,外键列在目标类上
func (my *Class) HasMany(accessor string, target ClassRef, foreignKey string) {
	my.AddField(&Field{
		Name:        accessor,
		Type:        target.Name,
		Virtual:     true,
		IsList:      true,
		Description: "关联的" + target.Name + "列表",
		Relation: &Relation{
			Type:        HAS_MANY,
			SourceClass: my.Ref().Qualified(),
			TargetClass: target.Qualified(),
			TargetField: foreignKey,
		},
	})
}

// ManyToMany 声明经由中间表的多对多关系
func (my *Class) ManyToMany(accessor string, target ClassRef, through *Through) {
	my.AddField(&Field{
		Name:        accessor,
		Type:        target.Name,
		Virtual:     true,
		IsList:      true,
		Description: "关联的" + target.Name + "列表",
		Relation: &Relation{
			Type:        MANY_TO_MANY,
			SourceClass: my.Ref().Qualified(),
			TargetClass: target.Qualified(),
			Through:     through,
		},
	})
}

// SetPrimaryKeys 声明主键并回写列的主键标记
func (my *Class) SetPrimaryKeys(keys ...string) {
	my.PrimaryKeys = keys
	for _, key := range keys {
		if field := my.Fields[key]; field != nil {
			field.IsPrimary = true
		}
	}
}

// MarshalJSON 实现自定义的JSON序列化
func (my *Class) MarshalJSON() ([]byte, error) {
	// 创建一个新的Fields映射，只包含主字段
	fields := make(map[string]*Field)
	for key, field := range my.Fields {
		// 只添加字段名等于Name的字段（主字段）
		if field.Name == key {
			fields[key] = field
		}
	}

	// 使用值拷贝序列化,避免递归触发指针接收者的MarshalJSON
	return utl.Marshal(Class{
		Name:        my.Name,
		Table:       my.Table,
		Namespace:   my.Namespace,
		Fields:      fields,
		Virtual:     my.Virtual,
		PrimaryKeys: my.PrimaryKeys,
		Description: my.Description,
		IsThrough:   my.IsThrough,
	})
}
