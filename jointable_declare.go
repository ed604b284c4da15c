package orm

import (
	"github.com/ichaly/ideabase/orm/protocol"
	"github.com/ichaly/ideabase/utl"
)

// SetTable 声明连接表名
// 表名严格为"<左类名>_<右类名>",保留原始大小写不做任何规范化
func (my *Linker) SetTable(s protocol.Schema, join Join) error {
	if err := my.validate(join); err != nil {
		return err
	}
	s.SetTable(utl.JoinString(join.LeftClass, SEPARATOR_TABLE, join.RightClass))
	return nil
}

// AddJoinColumns 声明两个外键列
// 列名为"<左访问器>_id"和"<右访问器>_id",均为非空整数列
func (my *Linker) AddJoinColumns(s protocol.Schema, join Join) error {
	join, err := my.Complete(protocol.ClassRef{}, join)
	if err != nil {
		return err
	}
	if err = my.requireMethods(join); err != nil {
		return err
	}
	s.AddColumns(foreignKey(join.LeftMethod), foreignKey(join.RightMethod))
	return nil
}

// SetPrimaryKeys 声明复合主键,顺序固定为左外键在前右外键在后
func (my *Linker) SetPrimaryKeys(s protocol.Schema, join Join) error {
	join, err := my.Complete(protocol.ClassRef{}, join)
	if err != nil {
		return err
	}
	if err = my.requireMethods(join); err != nil {
		return err
	}
	s.SetPrimaryKeys(utl.JoinString(join.LeftMethod, SUFFIX_ID), utl.JoinString(join.RightMethod, SUFFIX_ID))
	return nil
}

// foreignKey 构造外键列定义
func foreignKey(method string) *protocol.Field {
	column := utl.JoinString(method, SUFFIX_ID)
	return &protocol.Field{
		Name:      column,
		Column:    column,
		Type:      TYPE_INTEGER,
		IsNumeric: true,
	}
}
