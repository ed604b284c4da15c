package protocol

// Field 表示类的一个字段/列的完整定义
type Field struct {
	Type        string    `json:"type"`               // 数据类型
	Name        string    `json:"name"`               // 字段名
	Column      string    `json:"column"`             // 列名
	Virtual     bool      `json:"virtual"`            // 是否虚拟字段(关系访问器等)
	Nullable    bool      `json:"nullable"`           // 是否可空
	IsNumeric   bool      `json:"isNumeric"`          // 是否数值类型
	IsUnique    bool      `json:"isUnique"`           // 是否唯一
	IsPrimary   bool      `json:"isPrimary"`          // 是否主键
	IsList      bool      `json:"isList"`             // 是否集合类型
	Description string    `json:"description"`        // 描述信息
	Relation    *Relation `json:"relation,omitempty"` // 若为关系字段,指向关系定义
}
