package config

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/decker502/triangledowntoleft/pkg/embedded"
)

// EmbeddedWidgetConfigPath 嵌入的默认控件配置路径
const EmbeddedWidgetConfigPath = "data/widget.yaml"

// WidgetConfig 控件配置文件的原始结构
//
// 支持 YAML 和 TOML 两种格式，按文件扩展名选择解析器。
//
// 配置文件位置: data/widget.yaml
type WidgetConfig struct {
	// Palette 每个节点的颜色（十六进制，如 "#1A237E"），长度即节点数
	Palette []string `yaml:"palette" toml:"palette"`

	// BackColor 背景颜色
	BackColor string `yaml:"backColor" toml:"backColor"`

	// StrokeFactor 线宽 = min(w,h) / StrokeFactor
	StrokeFactor float64 `yaml:"strokeFactor" toml:"strokeFactor"`

	// SizeFactor 三角形边长 = min(w,h) / SizeFactor
	SizeFactor float64 `yaml:"sizeFactor" toml:"sizeFactor"`

	// DelayMs 两次重绘之间的间隔（毫秒）
	DelayMs int `yaml:"delayMs" toml:"delayMs"`

	// Parts 每个周期的分段数
	Parts int `yaml:"parts" toml:"parts"`

	// Step 每次 tick 缩放的增量
	Step float64 `yaml:"step" toml:"step"`

	// Deg 旋转阶段的最大角度
	Deg float64 `yaml:"deg" toml:"deg"`
}

// DefaultWidgetConfig 返回内置默认配置
func DefaultWidgetConfig() *WidgetConfig {
	return &WidgetConfig{
		Palette:      []string{"#1A237E", "#EF5350", "#AA00FF", "#C51162", "#00C853"},
		BackColor:    "#BDBDBD",
		StrokeFactor: 90,
		SizeFactor:   7.2,
		DelayMs:      20,
		Parts:        5,
		Step:         0.02 / 5,
		Deg:          90,
	}
}

// Validate 验证配置有效性
//
// 返回:
//   - error: 验证失败时返回错误，成功返回 nil
func (c *WidgetConfig) Validate() error {
	if len(c.Palette) == 0 {
		return errors.New("palette must contain at least one color")
	}
	if c.StrokeFactor <= 0 {
		return fmt.Errorf("strokeFactor must be positive, got %.2f", c.StrokeFactor)
	}
	if c.SizeFactor <= 0 {
		return fmt.Errorf("sizeFactor must be positive, got %.2f", c.SizeFactor)
	}
	if c.DelayMs <= 0 {
		return fmt.Errorf("delayMs must be positive, got %d", c.DelayMs)
	}
	if c.Parts <= 0 {
		return fmt.Errorf("parts must be positive, got %d", c.Parts)
	}
	// 步长不能超过一段，否则分段插值会跳过整段
	if c.Step <= 0 || c.Step > 1/float64(c.Parts) {
		return fmt.Errorf("step must be in (0, 1/parts], got %v", c.Step)
	}
	return nil
}

// Widget 解析后的不可变控件配置，按值传递给渲染器
type Widget struct {
	Palette      []color.RGBA
	BackColor    color.RGBA
	StrokeFactor float64
	SizeFactor   float64
	Delay        time.Duration
	Parts        int
	Step         float64
	Deg          float64
}

// Color 返回第 i 个节点的颜色
func (w Widget) Color(i int) color.RGBA {
	return w.Palette[i%len(w.Palette)]
}

// Resolve 验证配置并解析颜色
//
// 返回:
//   - Widget: 解析后的配置
//   - error: 验证或颜色解析失败时返回错误
func (c *WidgetConfig) Resolve() (Widget, error) {
	if err := c.Validate(); err != nil {
		return Widget{}, fmt.Errorf("invalid widget config: %w", err)
	}

	palette := make([]color.RGBA, 0, len(c.Palette))
	for i, hex := range c.Palette {
		clr, err := parseHex(hex)
		if err != nil {
			return Widget{}, fmt.Errorf("palette[%d]: %w", i, err)
		}
		palette = append(palette, clr)
	}

	back, err := parseHex(c.BackColor)
	if err != nil {
		return Widget{}, fmt.Errorf("backColor: %w", err)
	}

	return Widget{
		Palette:      palette,
		BackColor:    back,
		StrokeFactor: c.StrokeFactor,
		SizeFactor:   c.SizeFactor,
		Delay:        time.Duration(c.DelayMs) * time.Millisecond,
		Parts:        c.Parts,
		Step:         c.Step,
		Deg:          c.Deg,
	}, nil
}

// parseHex 将 "#RRGGBB" 解析为不透明颜色
func parseHex(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(strings.TrimSpace(hex))
	if err != nil {
		return color.RGBA{}, fmt.Errorf("failed to parse color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// ParseWidgetConfig 按格式解析配置数据
//
// 参数:
//   - data: 配置文件内容
//   - ext: 扩展名（".yaml"、".yml" 或 ".toml"）
func ParseWidgetConfig(data []byte, ext string) (*WidgetConfig, error) {
	// 未出现的字段保留默认值
	cfg := DefaultWidgetConfig()
	cfg.Palette = nil

	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse widget config (toml): %w", err)
		}
	case ".yaml", ".yml", "":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse widget config (yaml): %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported widget config format: %s", ext)
	}

	if len(cfg.Palette) == 0 {
		cfg.Palette = DefaultWidgetConfig().Palette
	}
	return cfg, nil
}

// LoadWidgetConfig 从文件系统加载控件配置
//
// 参数:
//   - path: 配置文件路径（如 "widget.yaml" 或 "widget.toml"）
//
// 返回:
//   - *WidgetConfig: 加载成功后的配置结构
//   - error: 读取、解析或验证失败时返回错误
func LoadWidgetConfig(path string) (*WidgetConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read widget config: %w", err)
	}

	cfg, err := ParseWidgetConfig(data, filepath.Ext(path))
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid widget config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadWidget 按优先级加载并解析控件配置
//
// 顺序：path 指定的文件 → 嵌入的 data/widget.yaml → 内置默认值。
// 前两者失败时记录警告并降级，仅当最终配置无法解析时返回错误。
func LoadWidget(path string) (Widget, error) {
	if path != "" {
		cfg, err := LoadWidgetConfig(path)
		if err == nil {
			log.Printf("[Config] 加载控件配置: %s", path)
			return cfg.Resolve()
		}
		log.Printf("[Config] Warning: %v (falling back to embedded config)", err)
	}

	if data, err := embedded.ReadFile(EmbeddedWidgetConfigPath); err == nil {
		cfg, err := ParseWidgetConfig(data, ".yaml")
		if err == nil {
			log.Printf("[Config] 加载嵌入控件配置: %s", EmbeddedWidgetConfigPath)
			return cfg.Resolve()
		}
		log.Printf("[Config] Warning: embedded config broken: %v (using defaults)", err)
	}

	log.Printf("[Config] 使用内置默认控件配置")
	return DefaultWidgetConfig().Resolve()
}
