// Package walk 提供带深度限制的目录遍历
//
// 与 filepath.WalkDir 不同，Walker 以“目录”为单位枚举：同一目录下的条目先被过滤、排序、截断，
// 然后逐个交给 Visit 回调，回调可以拿到条目在兄弟节点中的位置（Index/Count），
// 这样树形渲染这类需要知道“是否最后一个子项”的场景也能直接复用
package walk

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
)

// ErrStop 由 Visit 返回时立即结束整个遍历，Walk 本身返回 nil
var ErrStop = errors.New("walk: stop")

// SkipDir 由 Visit 返回时不再进入当前目录条目
var SkipDir = fs.SkipDir

// Entry 描述遍历过程中的单个条目
type Entry struct {
	Path    string // 完整路径（root 与相对路径拼接）
	Rel     string // 相对 root 的路径，统一使用 `/` 分隔
	Name    string // 条目名称
	Depth   int    // 所在目录的深度，root 下的直接子项为 0
	IsDir   bool   // 是否为目录（符号链接按目标类型判断）
	Symlink bool   // 是否为符号链接
	Index   int    // 在同目录（过滤、排序、截断之后）中的序号
	Count   int    // 同目录中实际被访问的条目数（截断之后）
	Total   int    // 同目录中通过过滤的条目总数（截断之前）
}

// Last 报告该条目是否为同目录中真正的最后一项
// 目录被 Limit 截断时，最后一个被访问的条目并不是最后一项
func (e Entry) Last() bool {
	return e.Index == e.Total-1
}

// Walker 是一次独立的有界遍历；零值只枚举 root 下的直接条目
// 每个调用方各自构造 Walker，互不共享遍历状态
type Walker struct {
	// MaxDepth 限制可进入的目录深度，root 为 0；小于 0 表示不限制
	// 深度为 d 的目录中的子目录只有在 d+1 <= MaxDepth 时才会被进入，到达边界时静默停止
	MaxDepth int

	// Skip 返回 true 的条目既不会被访问，也不会被进入
	Skip func(e Entry) bool

	// Prune 返回 true 的目录仍会被访问，但不会被进入
	Prune func(e Entry) bool

	// Sort 非 nil 时用于对同一目录下的条目排序（语义同 slices.SortFunc）
	Sort func(a, b Entry) int

	// Limit 大于 0 时，每个目录最多访问前 Limit 个条目
	Limit int

	// SiblingsFirst 为 true 时先访问同一目录下的全部条目，再依次进入其中的子目录
	// 默认（false）为先序深度优先：访问一个子目录后立即进入它
	SiblingsFirst bool

	// Visit 按先序访问每个条目
	Visit func(e Entry) error

	// OnError 在目录无法枚举（例如权限不足）时被调用，该子树随后被跳过
	OnError func(path string, err error)
}

// Walk 从 root 开始遍历；root 本身不会交给 Visit
// 只有 Visit 返回的（非 ErrStop、非 SkipDir）错误才会被返回
func (w *Walker) Walk(root string) error {
	err := w.walkDir(root, "", 0)
	if errors.Is(err, ErrStop) {
		return nil
	}
	return err
}

// walkDir 枚举 dir 下的条目，depth 为 dir 自身的深度
func (w *Walker) walkDir(dir, rel string, depth int) error {
	entries, err := w.readDir(dir, rel, depth)
	if err != nil {
		if w.OnError != nil {
			w.OnError(dir, err)
		}
		return nil
	}

	if !w.SiblingsFirst {
		for _, e := range entries {
			descend, err := w.visit(e, depth)
			if err != nil {
				return err
			}
			if descend {
				if err := w.walkDir(e.Path, e.Rel, depth+1); err != nil {
					return err
				}
			}
		}
		return nil
	}

	var subdirs []Entry
	for _, e := range entries {
		descend, err := w.visit(e, depth)
		if err != nil {
			return err
		}
		if descend {
			subdirs = append(subdirs, e)
		}
	}
	for _, e := range subdirs {
		if err := w.walkDir(e.Path, e.Rel, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// visit 把条目交给 Visit，并报告随后是否应进入该条目
func (w *Walker) visit(e Entry, depth int) (bool, error) {
	if w.Visit != nil {
		if err := w.Visit(e); err != nil {
			if errors.Is(err, SkipDir) {
				return false, nil
			}
			return false, err
		}
	}
	if !e.IsDir || e.Symlink {
		return false, nil
	}
	if w.MaxDepth >= 0 && depth+1 > w.MaxDepth {
		return false, nil
	}
	if w.Prune != nil && w.Prune(e) {
		return false, nil
	}
	return true, nil
}

// readDir 读取目录并完成过滤、排序与截断
func (w *Walker) readDir(dir, rel string, depth int) ([]Entry, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(des))
	for _, d := range des {
		e := Entry{
			Path:  filepath.Join(dir, d.Name()),
			Name:  d.Name(),
			Depth: depth,
			IsDir: d.IsDir(),
		}
		if rel == "" {
			e.Rel = d.Name()
		} else {
			e.Rel = rel + "/" + d.Name()
		}
		if d.Type()&fs.ModeSymlink != 0 {
			// 悬空链接既不是文件也不是目录，直接忽略
			st, err := os.Stat(e.Path)
			if err != nil {
				continue
			}
			e.Symlink = true
			e.IsDir = st.IsDir()
		} else if !e.IsDir && !d.Type().IsRegular() {
			// 设备、管道、套接字等特殊文件不参与统计
			continue
		}
		if w.Skip != nil && w.Skip(e) {
			continue
		}
		entries = append(entries, e)
	}

	if w.Sort != nil {
		slices.SortStableFunc(entries, w.Sort)
	}
	total := len(entries)
	if w.Limit > 0 && total > w.Limit {
		entries = entries[:w.Limit]
	}
	for i := range entries {
		entries[i].Index = i
		entries[i].Count = len(entries)
		entries[i].Total = total
	}
	return entries, nil
}

// DirsFirst 是常用的排序函数：目录在前，文件在后，同类按名称字节序排列
func DirsFirst(a, b Entry) int {
	if a.IsDir != b.IsDir {
		if a.IsDir {
			return -1
		}
		return 1
	}
	switch {
	case a.Name < b.Name:
		return -1
	case a.Name > b.Name:
		return 1
	}
	return 0
}
