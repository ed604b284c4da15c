package orm

import (
	"testing"

	"github.com/ichaly/ideabase/orm/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplete(t *testing.T) {
	linker := NewLinker()
	self := protocol.ParseRef("MyApp.Schema.Result.FooBar")

	// 1. 全部缺省按类名推导
	t.Run("缺省值推导", func(t *testing.T) {
		join, err := linker.Complete(self, Join{LeftClass: "Foo", RightClass: "Bar"})
		require.NoError(t, err, "补全配置失败")

		assert.Equal(t, "foo", join.LeftMethod, "左访问器应该由类名推导")
		assert.Equal(t, "bar", join.RightMethod, "右访问器应该由类名推导")
		assert.Equal(t, "foos", join.LeftMethodPlural, "左复数访问器应该正确")
		assert.Equal(t, "bars", join.RightMethodPlural, "右复数访问器应该正确")
		assert.Equal(t, "foo_bar", join.SelfMethod, "回指访问器应该由声明类名推导")
		assert.Equal(t, "foo_bars", join.SelfMethodPlural, "回指复数访问器应该正确")
		assert.Equal(t, "MyApp", join.Namespace, "命名空间应该取限定名首段")
	})

	// 2. 显式提供的值不被覆盖
	t.Run("显式值优先", func(t *testing.T) {
		explicit := Join{
			LeftClass:         "Foo",
			RightClass:        "Bar",
			LeftMethod:        "owner",
			RightMethod:       "item",
			LeftMethodPlural:  "owners",
			RightMethodPlural: "items",
			SelfMethod:        "link",
			SelfMethodPlural:  "links",
			Namespace:         "Other",
		}
		join, err := linker.Complete(self, explicit)
		require.NoError(t, err, "补全配置失败")
		assert.Equal(t, explicit, join, "显式提供的值不应该被覆盖")
	})

	// 3. 多单词类名逐词处理
	t.Run("多单词类名", func(t *testing.T) {
		join, err := linker.Complete(self, Join{LeftClass: "CityHall", RightClass: "Person"})
		require.NoError(t, err, "补全配置失败")

		assert.Equal(t, "city_hall", join.LeftMethod, "访问器应该是蛇形")
		assert.Equal(t, "city_halls", join.LeftMethodPlural, "应该只复数化最后一个单词")
		assert.Equal(t, "person", join.RightMethod, "访问器应该是蛇形")
		assert.Equal(t, "people", join.RightMethodPlural, "应该使用不规则复数")
	})

	// 4. 重复补全不产生变化
	t.Run("重复补全幂等", func(t *testing.T) {
		once, err := linker.Complete(self, Join{LeftClass: "Foo", RightClass: "Bar"})
		require.NoError(t, err, "补全配置失败")
		twice, err := linker.Complete(self, once)
		require.NoError(t, err, "二次补全失败")
		assert.Equal(t, once, twice, "已补全的配置重复补全不应该有变化")
	})

	// 5. 必填项快速失败
	t.Run("缺少必填项", func(t *testing.T) {
		_, err := linker.Complete(self, Join{RightClass: "Bar"})
		require.Error(t, err, "缺少left_class应该报错")
		assert.Contains(t, err.Error(), "left_class", "错误信息应该指明缺失项")

		_, err = linker.Complete(self, Join{LeftClass: "Foo"})
		require.Error(t, err, "缺少right_class应该报错")
		assert.Contains(t, err.Error(), "right_class", "错误信息应该指明缺失项")
	})

	// 6. 未限定的声明类
	t.Run("未限定声明类", func(t *testing.T) {
		join, err := linker.Complete(protocol.ParseRef("FooBar"), Join{LeftClass: "Foo", RightClass: "Bar"})
		require.NoError(t, err, "补全配置失败")

		assert.Empty(t, join.Namespace, "未限定声明类的命名空间应该为空")
		assert.Equal(t, "foo_bar", join.SelfMethod, "回指访问器仍应该推导")
	})
}

func TestDeclareJoinTable(t *testing.T) {
	linker := NewLinker()
	self := protocol.ParseRef("MyApp.FooBar")

	class := &protocol.Class{Name: self.Name, Namespace: self.Namespace, IsThrough: true}
	join, err := linker.DeclareJoinTable(class, self, Join{LeftClass: "Foo", RightClass: "Bar"})
	require.NoError(t, err, "声明连接表失败")

	// 1. 表名严格按类名拼接
	t.Run("表名", func(t *testing.T) {
		assert.Equal(t, "Foo_Bar", class.Table, "表名应该是左右类名按下划线拼接")
	})

	// 2. 两个外键列
	t.Run("外键列", func(t *testing.T) {
		for _, column := range []string{"foo_id", "bar_id"} {
			field, ok := class.Fields[column]
			require.True(t, ok, "应该存在%s列", column)
			assert.Equal(t, column, field.Column, "列名应该正确")
			assert.Equal(t, TYPE_INTEGER, field.Type, "外键列应该是整数类型")
			assert.True(t, field.IsNumeric, "外键列应该是数值列")
			assert.False(t, field.Nullable, "外键列不应该可为空")
			assert.True(t, field.IsPrimary, "外键列应该是主键")
		}
	})

	// 3. 复合主键顺序固定
	t.Run("复合主键", func(t *testing.T) {
		assert.Equal(t, []string{"foo_id", "bar_id"}, class.PrimaryKeys, "主键顺序应该左外键在前")
	})

	// 4. 对左右父类的从属关系
	t.Run("从属关系", func(t *testing.T) {
		foo, ok := class.Fields["foo"]
		require.True(t, ok, "应该存在左侧访问器字段")
		require.NotNil(t, foo.Relation, "访问器应该有关系定义")
		assert.Equal(t, protocol.BELONGS_TO, foo.Relation.Type, "应该是从属关系")
		assert.Equal(t, "MyApp.Foo", foo.Relation.TargetClass, "关系目标应该带命名空间")
		assert.Equal(t, "foo_id", foo.Relation.SourceField, "关系来源应该是外键列")
		assert.True(t, foo.Virtual, "访问器应该是虚拟字段")

		bar, ok := class.Fields["bar"]
		require.True(t, ok, "应该存在右侧访问器字段")
		require.NotNil(t, bar.Relation, "访问器应该有关系定义")
		assert.Equal(t, "MyApp.Bar", bar.Relation.TargetClass, "关系目标应该带命名空间")
		assert.Equal(t, "bar_id", bar.Relation.SourceField, "关系来源应该是外键列")
	})

	// 5. 返回补全后的配置
	t.Run("配置补全", func(t *testing.T) {
		assert.Equal(t, "foo", join.LeftMethod, "返回的配置应该已补全访问器")
		assert.Equal(t, "bars", join.RightMethodPlural, "返回的配置应该已补全复数访问器")
		assert.Equal(t, "MyApp", join.Namespace, "返回的配置应该已补全命名空间")
	})
}

func TestDeclareJoinTableExplicitMethods(t *testing.T) {
	linker := NewLinker()
	self := protocol.ParseRef("MyApp.GearView")

	class := &protocol.Class{Name: self.Name, Namespace: self.Namespace, IsThrough: true}
	_, err := linker.DeclareJoinTable(class, self, Join{
		LeftClass:   "Gear",
		RightClass:  "View",
		LeftMethod:  "owner",
		RightMethod: "item",
	})
	require.NoError(t, err, "声明连接表失败")

	assert.Equal(t, "Gear_View", class.Table, "表名只由类名决定")
	assert.Contains(t, class.Fields, "owner_id", "外键列应该按显式访问器命名")
	assert.Contains(t, class.Fields, "item_id", "外键列应该按显式访问器命名")
	assert.Equal(t, []string{"owner_id", "item_id"}, class.PrimaryKeys, "主键应该按显式访问器命名")
}

func TestWithoutConverter(t *testing.T) {
	linker := NewLinker(WithoutConverter())
	self := protocol.ParseRef("MyApp.FooBar")

	// 1. 补全本身不报错,访问器保持未解析
	t.Run("访问器保持未解析", func(t *testing.T) {
		join, err := linker.Complete(self, Join{LeftClass: "Foo", RightClass: "Bar"})
		require.NoError(t, err, "降级模式下补全不应该报错")

		assert.Empty(t, join.LeftMethod, "访问器不应该被推导")
		assert.Empty(t, join.RightMethod, "访问器不应该被推导")
		assert.Empty(t, join.LeftMethodPlural, "复数访问器不应该被推导")
		assert.Empty(t, join.SelfMethod, "回指访问器不应该被推导")
	})

	// 2. 表名声明不依赖访问器
	t.Run("表名声明可用", func(t *testing.T) {
		class := &protocol.Class{Name: self.Name}
		err := linker.SetTable(class, Join{LeftClass: "Foo", RightClass: "Bar"})
		require.NoError(t, err, "表名声明不应该报错")
		assert.Equal(t, "Foo_Bar", class.Table, "表名应该正确")
	})

	// 3. 依赖访问器的声明报未解析错误
	t.Run("依赖访问器的声明报错", func(t *testing.T) {
		class := &protocol.Class{Name: self.Name}
		err := linker.AddJoinColumns(class, Join{LeftClass: "Foo", RightClass: "Bar"})
		assert.ErrorIs(t, err, ErrUnresolvedMethod, "外键列声明应该报未解析错误")

		err = linker.SetPrimaryKeys(class, Join{LeftClass: "Foo", RightClass: "Bar"})
		assert.ErrorIs(t, err, ErrUnresolvedMethod, "主键声明应该报未解析错误")
	})

	// 4. 显式访问器下全部可用,复数仍从单数推导
	t.Run("显式访问器可用", func(t *testing.T) {
		class := &protocol.Class{Name: self.Name, IsThrough: true}
		join, err := linker.DeclareJoinTable(class, self, Join{
			LeftClass:   "Foo",
			RightClass:  "Bar",
			LeftMethod:  "foo",
			RightMethod: "bar",
		})
		require.NoError(t, err, "显式访问器下声明不应该报错")

		assert.Contains(t, class.Fields, "foo_id", "外键列应该存在")
		assert.Contains(t, class.Fields, "bar_id", "外键列应该存在")
		assert.Equal(t, "foos", join.LeftMethodPlural, "复数仍应该从显式单数推导")
	})
}
