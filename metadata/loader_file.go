package metadata

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ichaly/ideabase/log"
	"github.com/ichaly/ideabase/orm/internal"
	"github.com/ichaly/ideabase/orm/protocol"
	"github.com/ichaly/ideabase/utl"
)

// 匹配文件路径中的{mode}占位符
var modeRegex = regexp.MustCompile(`{\s*mode\s*}`)

// FileLoader 文件目录加载器
// 实现Loader接口
type FileLoader struct {
	cfg *internal.Config
}

// NewFileLoader 创建文件加载器
func NewFileLoader(cfg *internal.Config) *FileLoader {
	return &FileLoader{cfg: cfg}
}

func (my *FileLoader) Name() string  { return LoaderFile }
func (my *FileLoader) Priority() int { return 60 }

// Support 判断是否支持文件加载
func (my *FileLoader) Support() bool {
	return my.cfg != nil
}

// resolveFilePath 解析文件路径
func (my *FileLoader) resolveFilePath() string {
	// 获取基础路径
	filePath := my.cfg.Metadata.File

	// 如果未配置文件路径，则使用默认路径
	if filePath == "" {
		parts := []string{filepath.Join("cfg", "catalog")}
		if my.cfg.Mode != "" {
			parts = append(parts, my.cfg.Mode)
		}
		parts = append(parts, "json")
		filePath = strings.Join(parts, ".")
	} else {
		// 处理占位符
		filePath = modeRegex.ReplaceAllString(filePath, my.cfg.Mode)
	}

	// 处理路径拼接
	if filepath.IsAbs(filePath) {
		return filePath
	}
	return filepath.Join(my.cfg.Root, filePath)
}

// Load 从文件加载目录
// 1. 计算文件路径
// 2. 读取文件内容
// 3. 反序列化为临时结构
// 4. 重建字段的列名索引
// 5. 注入宿主并设置版本号
func (my *FileLoader) Load(h Hoster) error {
	// 1. 计算文件路径
	filePath := my.resolveFilePath()
	log.Info().Str("file", filePath).Msg("开始从文件加载目录")

	// 2. 读取文件内容
	data, err := os.ReadFile(filePath)
	if err != nil {
		log.Error().Err(err).Str("file", filePath).Msg("读取文件失败")
		return fmt.Errorf("读取文件失败: %w", err)
	}

	// 3. 反序列化为临时结构体,包含所有类节点和版本号
	var snapshot struct {
		Nodes   map[string]*protocol.Class `json:"nodes"`
		Version string                     `json:"version"`
	}
	if err = utl.UnmarshalJSON(data, &snapshot); err != nil {
		log.Error().Err(err).Str("file", filePath).Msg("解析目录文件失败")
		return fmt.Errorf("解析目录文件失败: %w", err)
	}

	// 4. 序列化只保留主字段,载入时重建列名索引
	for _, name := range utl.SortKeys(snapshot.Nodes) {
		node := snapshot.Nodes[name]
		if node == nil {
			continue
		}
		fields := make([]*protocol.Field, 0, len(node.Fields))
		for _, field := range node.Fields {
			fields = append(fields, field)
		}
		for _, field := range fields {
			node.AddField(field)
		}

		// 5. 注入宿主
		if err = h.PutNode(node); err != nil {
			return fmt.Errorf("注册类[%s]失败: %w", name, err)
		}
	}
	if snapshot.Version != "" {
		h.SetVersion(snapshot.Version)
	}

	log.Info().Int("classes", len(snapshot.Nodes)).Str("version", snapshot.Version).Msg("文件目录加载完成")
	return nil
}
