package metadata

import (
	"github.com/ichaly/ideabase/orm/protocol"
)

// 加载器名称常量
const (
	LoaderFile  = "file"  // 文件加载器
	LoaderClass = "class" // 类配置加载器
	LoaderJoin  = "join"  // 连接表配置加载器
)

// Hoster 元数据宿主接口
type Hoster interface {
	// PutNode 注册类节点
	PutNode(node *protocol.Class) error
	// GetNode 获取类节点
	GetNode(name string) (*protocol.Class, bool)
	// SetVersion 设置版本号
	SetVersion(version string)
}

// Loader 元数据加载器接口
type Loader interface {
	// Name 加载器名称
	Name() string
	// Load 加载元数据到宿主
	Load(h Hoster) error
	// Support 判断当前配置下是否可用
	Support() bool
	// Priority 优先级,数值大的后执行并可覆盖先前结果
	Priority() int
}
