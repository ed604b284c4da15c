package orm

import (
	"testing"

	"github.com/ichaly/ideabase/orm/internal"
	"github.com/ichaly/ideabase/orm/metadata"
	"github.com/ichaly/ideabase/std"
	"github.com/ichaly/ideabase/utl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamer(t *testing.T) {
	k, err := std.NewKonfig()
	require.NoError(t, err, "创建配置失败")
	k.Set("mode", "test")
	k.Set("app.root", utl.Root())
	k.Set("metadata.classes", map[string]*internal.ClassConfig{
		"User": {
			Table:       "member",
			PrimaryKeys: []string{"id"},
			Columns: map[string]*internal.ColumnConfig{
				"id": {Type: "integer", IsPrimary: true, IsNumeric: true},
			},
		},
	})
	k.Set("metadata.joins", map[string]*internal.JoinConfig{
		"FooBar": {LeftClass: "Foo", RightClass: "Bar"},
	})

	meta, err := NewCatalog(k, WithoutLoader(metadata.LoaderFile))
	require.NoError(t, err, "创建目录失败")

	namer := NewNamer(meta)

	// 1. 目录中声明的连接表优先
	t.Run("连接表命名", func(t *testing.T) {
		assert.Equal(t, "Foo_Bar", namer.JoinTableName("FooBar"), "已声明连接表应该取目录中的表名")
		assert.Equal(t, "user_languages", namer.JoinTableName("user_languages"), "未声明连接表应该退回默认策略")
		assert.Equal(t, "users", namer.JoinTableName("User"), "非连接表的类应该退回默认策略")
	})

	// 2. 普通表名优先取目录声明
	t.Run("普通表命名", func(t *testing.T) {
		assert.Equal(t, "member", namer.TableName("User"), "已声明类应该取目录中的表名")
		assert.Equal(t, "widgets", namer.TableName("Widget"), "未声明类应该退回默认策略")
	})
}
