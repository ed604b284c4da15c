package protocol

// Schema 宿主ORM实体的声明契约
// 连接表的各项声明(表名、列、关系、主键)都通过该接口下发,
// 任何能接受这些声明的宿主实现都可以接入
type Schema interface {
	// SetTable 声明表名
	SetTable(table string)
	// AddColumns 声明列
	AddColumns(fields ...*Field)
	// BelongsTo 声明从属关系,外键列在本方
	BelongsTo(accessor string, target ClassRef, foreignKey string)
	// HasMany 声明一对多关系,外键列在目标方
	HasMany(accessor string, target ClassRef, foreignKey string)
	// ManyToMany 声明经由中间表的多对多关系
	ManyToMany(accessor string, target ClassRef, through *Through)
	// SetPrimaryKeys 声明主键,顺序即复合主键顺序
	SetPrimaryKeys(keys ...string)
}

// Resolver 按引用解析已注册的类声明面
type Resolver interface {
	ResolveClass(ref ClassRef) (Schema, bool)
}
