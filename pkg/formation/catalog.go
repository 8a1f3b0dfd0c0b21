package formation

import (
	"fmt"
	"strconv"
	"strings"

	"matchday-service/pkg/common"
)

// Slot 阵型中的一个命名位置，坐标为球场百分比 (0-100)。
// y 轴以本方球门为 0，渲染客队一侧时由消费方用 MirrorY 镜像。
type Slot struct {
	ID   string  `json:"slot_id"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Role string  `json:"role_label"`
}

// Formation 一套阵型: 名称 + 有序位置列表
type Formation struct {
	Name  string `json:"name"`
	Slots []Slot `json:"slots"`
}

// Catalog 阵型目录。进程启动时构建一次，之后只读共享，
// 所有比赛无需同步即可并发访问。
type Catalog struct {
	formats map[string][]Formation
	order   []string
}

// MirrorY 渲染非主队朝向一侧时镜像 y 坐标。纯展示换算，不落存储。
func MirrorY(y float64) float64 {
	return 100 - y
}

// PlayerCount 从赛制字符串解析场上人数, 如 "7v7" -> 7
func PlayerCount(format string) (int, error) {
	idx := strings.Index(format, "v")
	if idx <= 0 {
		return 0, fmt.Errorf("%w: %q", common.ErrUnknownFormat, format)
	}
	n, err := strconv.Atoi(format[:idx])
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %q", common.ErrUnknownFormat, format)
	}
	return n, nil
}

// Formats 返回已注册赛制，按注册顺序
func (c *Catalog) Formats() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Formations 返回某赛制下全部阵型，第一个为默认阵型
func (c *Catalog) Formations(format string) ([]Formation, error) {
	fs, ok := c.formats[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownFormat, format)
	}
	return fs, nil
}

// Resolve 查找 (赛制, 阵型名) 对应的位置序列。
// 阵型名未知或为空时回退到该赛制注册的第一个阵型，这是确定性回退
// 而非错误；赛制未知时返回 ErrUnknownFormat。
func (c *Catalog) Resolve(format, name string) ([]Slot, error) {
	fs, ok := c.formats[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownFormat, format)
	}
	for _, f := range fs {
		if f.Name == name {
			return f.Slots, nil
		}
	}
	return fs[0].Slots, nil
}

// DefaultFormation 返回某赛制的默认阵型名
func (c *Catalog) DefaultFormation(format string) (string, error) {
	fs, ok := c.formats[format]
	if !ok {
		return "", fmt.Errorf("%w: %q", common.ErrUnknownFormat, format)
	}
	return fs[0].Name, nil
}

// HasSlot 判断某阵型是否包含指定位置
func (c *Catalog) HasSlot(format, name, slotID string) bool {
	slots, err := c.Resolve(format, name)
	if err != nil {
		return false
	}
	for _, s := range slots {
		if s.ID == slotID {
			return true
		}
	}
	return false
}

func (c *Catalog) register(format string, f Formation) {
	count, err := PlayerCount(format)
	if err != nil {
		panic(fmt.Sprintf("formation catalog: bad format %q", format))
	}
	if len(f.Slots) != count {
		panic(fmt.Sprintf("formation catalog: %s %s has %d slots, want %d",
			format, f.Name, len(f.Slots), count))
	}
	seen := make(map[string]bool, len(f.Slots))
	for _, s := range f.Slots {
		if seen[s.ID] {
			panic(fmt.Sprintf("formation catalog: %s %s duplicate slot %s", format, f.Name, s.ID))
		}
		seen[s.ID] = true
	}
	if _, ok := c.formats[format]; !ok {
		c.order = append(c.order, format)
	}
	c.formats[format] = append(c.formats[format], f)
}
