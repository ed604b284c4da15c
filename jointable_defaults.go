package orm

import (
	"fmt"

	"github.com/ichaly/ideabase/orm/protocol"
)

// Complete 填充连接表配置中缺失的字段,返回补全后的副本
// 合并规则: 显式提供的值优先,其余按类名推导,只有缺失的字段会被赋值,
// 因此对已补全的配置重复调用不产生任何变化
func (my *Linker) Complete(self protocol.ClassRef, join Join) (Join, error) {
	if err := my.validate(join); err != nil {
		return join, err
	}

	// 命名空间缺省取声明类限定名的首段
	if join.Namespace == "" {
		join.Namespace = self.Root()
	}

	// 访问器名由类名退驼峰推导,能力缺失时保持未解析
	if my.convert != nil {
		if join.LeftMethod == "" {
			join.LeftMethod = my.convert(join.LeftClass)
		}
		if join.RightMethod == "" {
			join.RightMethod = my.convert(join.RightClass)
		}
		if join.SelfMethod == "" && self.Name != "" {
			join.SelfMethod = my.convert(self.Name)
		}
	}

	// 复数访问器在单数已知时按短语规则推导
	if join.LeftMethodPlural == "" && join.LeftMethod != "" {
		join.LeftMethodPlural = PluralizePhrase(join.LeftMethod)
	}
	if join.RightMethodPlural == "" && join.RightMethod != "" {
		join.RightMethodPlural = PluralizePhrase(join.RightMethod)
	}
	if join.SelfMethodPlural == "" && join.SelfMethod != "" {
		join.SelfMethodPlural = PluralizePhrase(join.SelfMethod)
	}

	return join, nil
}

// validate 必填项快速失败校验
func (my *Linker) validate(join Join) error {
	if join.LeftClass == "" {
		return fmt.Errorf("连接表配置缺少left_class")
	}
	if join.RightClass == "" {
		return fmt.Errorf("连接表配置缺少right_class")
	}
	return nil
}

// requireMethods 校验左右访问器名已解析
func (my *Linker) requireMethods(join Join) error {
	if join.LeftMethod == "" {
		return fmt.Errorf("left_method: %w", ErrUnresolvedMethod)
	}
	if join.RightMethod == "" {
		return fmt.Errorf("right_method: %w", ErrUnresolvedMethod)
	}
	return nil
}
