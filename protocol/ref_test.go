package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRef(t *testing.T) {
	tests := []struct {
		name      string
		qualified string
		expected  ClassRef
	}{
		{"无命名空间", "Foo", ClassRef{Name: "Foo"}},
		{"单段命名空间", "MyApp.Foo", ClassRef{Namespace: "MyApp", Name: "Foo"}},
		{"多段命名空间", "MyApp.Schema.Result.Foo", ClassRef{Namespace: "MyApp.Schema.Result", Name: "Foo"}},
		{"空串", "", ClassRef{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := ParseRef(tt.qualified)
			assert.Equal(t, tt.expected, ref, "解析结果应该正确")
			assert.Equal(t, tt.qualified, ref.Qualified(), "限定名应该可以往返")
		})
	}
}

func TestClassRefRoot(t *testing.T) {
	tests := []struct {
		name     string
		ref      ClassRef
		expected string
	}{
		{"无命名空间", ClassRef{Name: "Foo"}, ""},
		{"单段命名空间", ClassRef{Namespace: "MyApp", Name: "Foo"}, "MyApp"},
		{"多段命名空间", ClassRef{Namespace: "MyApp.Schema.Result", Name: "Foo"}, "MyApp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.ref.Root(), "首段命名空间应该正确")
		})
	}
}

func TestClassRefIsZero(t *testing.T) {
	assert.True(t, ClassRef{}.IsZero(), "零值引用应该为空")
	assert.False(t, ClassRef{Name: "Foo"}.IsZero(), "有类名的引用不应该为空")
	assert.False(t, ClassRef{Namespace: "MyApp"}.IsZero(), "有命名空间的引用不应该为空")
}

func TestRelationTypeReverse(t *testing.T) {
	assert.Equal(t, HAS_MANY, BELONGS_TO.Reverse(), "从属关系的反向应该是一对多")
	assert.Equal(t, BELONGS_TO, HAS_MANY.Reverse(), "一对多关系的反向应该是从属")
	assert.Equal(t, MANY_TO_MANY, MANY_TO_MANY.Reverse(), "多对多关系的反向仍是多对多")
}
