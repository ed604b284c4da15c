package orm

import (
	"fmt"

	"github.com/ichaly/ideabase/orm/protocol"
	"github.com/ichaly/ideabase/utl"
)

// GenerateRelationships 声明连接表对左右父类的从属关系
// 左侧经"<左访问器>_id"列指向<命名空间>.<左类名>,右侧同理
func (my *Linker) GenerateRelationships(s protocol.Schema, self protocol.ClassRef, join Join) error {
	join, err := my.Complete(self, join)
	if err != nil {
		return err
	}
	if err = my.requireMethods(join); err != nil {
		return err
	}
	s.BelongsTo(join.LeftMethod, leftRef(join), utl.JoinString(join.LeftMethod, SUFFIX_ID))
	s.BelongsTo(join.RightMethod, rightRef(join), utl.JoinString(join.RightMethod, SUFFIX_ID))
	return nil
}

// GenerateHasMany 在左右父类上声明指向连接表的一对多关系
// 不在默认编排内,访问器名为self_method,外键为父类各自的外键列
func (my *Linker) GenerateHasMany(self protocol.ClassRef, join Join) error {
	join, err := my.Complete(self, join)
	if err != nil {
		return err
	}
	if err = my.requireMethods(join); err != nil {
		return err
	}
	if join.SelfMethod == "" {
		return fmt.Errorf("self_method: %w", ErrUnresolvedMethod)
	}

	left, right, err := my.resolveParents(join)
	if err != nil {
		return err
	}
	left.HasMany(join.SelfMethod, self, utl.JoinString(join.LeftMethod, SUFFIX_ID))
	right.HasMany(join.SelfMethod, self, utl.JoinString(join.RightMethod, SUFFIX_ID))
	return nil
}

// GenerateManyToMany 在左右父类上声明经连接表的多对多关系
// 不在默认编排内,访问器名取对侧的复数访问器,穿透连接表的两个从属关系
func (my *Linker) GenerateManyToMany(self protocol.ClassRef, join Join) error {
	join, err := my.Complete(self, join)
	if err != nil {
		return err
	}
	if err = my.requireMethods(join); err != nil {
		return err
	}

	left, right, err := my.resolveParents(join)
	if err != nil {
		return err
	}

	table := utl.JoinString(join.LeftClass, SEPARATOR_TABLE, join.RightClass)
	// 左父类获得名为右侧复数的访问器,右父类反之
	left.ManyToMany(join.RightMethodPlural, rightRef(join), &protocol.Through{
		Table:     table,
		SourceKey: utl.JoinString(join.LeftMethod, SUFFIX_ID),
		TargetKey: utl.JoinString(join.RightMethod, SUFFIX_ID),
	})
	right.ManyToMany(join.LeftMethodPlural, leftRef(join), &protocol.Through{
		Table:     table,
		SourceKey: utl.JoinString(join.RightMethod, SUFFIX_ID),
		TargetKey: utl.JoinString(join.LeftMethod, SUFFIX_ID),
	})
	return nil
}

// resolveParents 依次解析左右父类的声明面,左侧失败即终止
func (my *Linker) resolveParents(join Join) (protocol.Schema, protocol.Schema, error) {
	if my.resolver == nil {
		return nil, nil, fmt.Errorf("未注入父类解析器,无法声明反向关系")
	}
	ref := leftRef(join)
	left, ok := my.resolver.ResolveClass(ref)
	if !ok {
		return nil, nil, fmt.Errorf("父类[%s]未注册", ref.Qualified())
	}
	ref = rightRef(join)
	right, ok := my.resolver.ResolveClass(ref)
	if !ok {
		return nil, nil, fmt.Errorf("父类[%s]未注册", ref.Qualified())
	}
	return left, right, nil
}

// leftRef 构造左父类引用
func leftRef(join Join) protocol.ClassRef {
	return protocol.ClassRef{Namespace: join.Namespace, Name: join.LeftClass}
}

// rightRef 构造右父类引用
func rightRef(join Join) protocol.ClassRef {
	return protocol.ClassRef{Namespace: join.Namespace, Name: join.RightClass}
}
