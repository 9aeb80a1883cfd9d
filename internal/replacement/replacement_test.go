package replacement

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"editor-assets/internal/tagtree"
)

func TestParse(t *testing.T) {
	yaml := `
replacements:
  - path: [知识点标签, 语法, 动词]
    children:
      - 实义动词
      - title: 助动词
        children: [be, do, have]
      - title: 情态动词
`

	f, err := Parse([]byte(yaml))
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version)
	require.Len(t, f.Replacements, 1)

	e := f.Replacements[0]
	assert.Equal(t, []string{"知识点标签", "语法", "动词"}, e.Path)
	require.Len(t, e.Children, 3)
	assert.Equal(t, NodeSpec{Title: "实义动词"}, e.Children[0])
	assert.Equal(t, "助动词", e.Children[1].Title)
	assert.Equal(t, []NodeSpec{{Title: "be"}, {Title: "do"}, {Title: "have"}}, e.Children[1].Children)
	assert.Equal(t, NodeSpec{Title: "情态动词"}, e.Children[2])
}

func TestParseRejectsSequenceChild(t *testing.T) {
	_, err := Parse([]byte(`
replacements:
  - path: [a]
    children:
      - [x, y]
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected title or {title, children}")
}

func TestMarshalWritesLeavesAsTitles(t *testing.T) {
	f := &File{
		Version: "1",
		Replacements: []Entry{{
			Path:     []string{"a", "b"},
			Children: []NodeSpec{{Title: "x"}, {Title: "y", Children: []NodeSpec{{Title: "z"}}}},
		}},
	}

	data, err := Marshal(f)
	require.NoError(t, err)

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, f, back)
	assert.Contains(t, string(data), "- x\n")
}

func TestValidate(t *testing.T) {
	f := &File{Replacements: []Entry{
		{Path: []string{"a"}, Children: []NodeSpec{{Title: "x"}, {Title: " x "}, {Title: ""}}},
		{Path: []string{" a "}, Children: []NodeSpec{{Title: "y"}}},
		{Path: nil, Children: []NodeSpec{{Title: "z"}}},
		{Path: []string{"b"}},
		{Path: []string{"c"}, Children: []NodeSpec{{Title: "3个子项", Children: []NodeSpec{{Title: ""}}}}},
	}}

	diags := Validate(f)

	var errs, warns []string

	for _, d := range diags.Errors {
		errs = append(errs, d.Code)
	}

	for _, d := range diags.Warnings {
		warns = append(warns, d.Code)
	}

	assert.Equal(t, []string{CodeEmptyTitle, CodeDuplicatePath, CodeEmptyPath, CodeEmptyTitle}, errs)
	assert.Equal(t, []string{CodeDuplicateTitle, CodeEmptyChildren, CodePlaceholderTitle}, warns)

	assert.Equal(t, "c / 3个子项", diags.Errors[3].Path)
	assert.False(t, diags.IsValid())
}

func TestValidateNil(t *testing.T) {
	diags := Validate(nil)
	assert.True(t, diags.HasErrors())
}

func TestBuildFailsOnErrors(t *testing.T) {
	_, diags, err := Build(&File{Replacements: []Entry{
		{Path: []string{"a"}, Children: []NodeSpec{{Title: "x"}}},
		{Path: []string{"a"}, Children: []NodeSpec{{Title: "y"}}},
	}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), CodeDuplicatePath)
	assert.True(t, diags.HasErrors())
}

func TestBuildKeepsWarnings(t *testing.T) {
	table, diags, err := Build(&File{Replacements: []Entry{
		{Path: []string{"a"}, Children: []NodeSpec{{Title: "x"}, {Title: "x"}}},
		{Path: []string{"b"}},
	}})
	require.NoError(t, err)
	assert.Len(t, diags.Warnings, 2)
	assert.Equal(t, 2, table.Len())

	empty, ok := table.Lookup(tagtree.NewPath("b"))
	require.True(t, ok)
	assert.Empty(t, empty)
}

func TestTableLookupReturnsCopies(t *testing.T) {
	table := NewTable()
	path := tagtree.NewPath("root", "leaf")
	require.NoError(t, table.Add(path, []*tagtree.Node{tagtree.New("A"), tagtree.New("B")}))

	first, ok := table.Lookup(path)
	require.True(t, ok)
	first[0].Title = "mutated"

	second, ok := table.Lookup(tagtree.NewPath("root", "leaf"))
	require.True(t, ok)
	assert.Equal(t, []string{"A", "B"}, tagtree.Titles(second))

	_, ok = table.Lookup(tagtree.NewPath("root"))
	assert.False(t, ok)

	err := table.Add(path, nil)
	require.ErrorIs(t, err, ErrDuplicatePath)
}

func TestNilTableLookup(t *testing.T) {
	var table *Table

	_, ok := table.Lookup(tagtree.NewPath("a"))
	assert.False(t, ok)
	assert.Equal(t, 0, table.Len())
}

func TestTablePathsKeepInsertionOrder(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.Add(tagtree.NewPath("b"), nil))
	require.NoError(t, table.Add(tagtree.NewPath("a", "x"), nil))

	paths := table.Paths()
	require.Len(t, paths, 2)
	assert.Equal(t, "b", paths[0].String())
	assert.Equal(t, "a / x", paths[1].String())

	paths[0] = tagtree.NewPath("changed")
	assert.Equal(t, "b", table.Paths()[0].String())

	var empty *Table
	assert.Nil(t, empty.Paths())
}

func TestDefaultCuratedTable(t *testing.T) {
	table, diags, err := Default()
	require.NoError(t, err)
	assert.Zero(t, diags.Len())
	assert.Equal(t, 83, table.Len())

	children, ok := table.Lookup(tagtree.NewPath("知识点标签", "语篇主题", "初中", "人与自我", "个人情况"))
	require.True(t, ok)
	assert.Equal(t, []string{
		"个人信息", "个人经历", "外貌与性格", "兴趣与爱好", "家庭情况",
		"学习与成长", "目标与理想", "情绪与感受", "国籍与语言", "联系方式",
	}, tagtree.Titles(children))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.yaml")
	require.NoError(t, WriteFile(&File{Replacements: []Entry{
		{Path: []string{"a", "b"}, Children: []NodeSpec{{Title: "c"}}},
	}}, path))

	table, _, err := Load(path)
	require.NoError(t, err)

	children, ok := table.Lookup(tagtree.NewPath("a", "b"))
	require.True(t, ok)
	assert.Equal(t, []string{"c"}, tagtree.Titles(children))

	_, _, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	curated, _, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 83, curated.Len())
}

func TestLoadFileRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("replacements: [\n"), 0o644))

	_, err := LoadFile(path)
	require.Error(t, err)
}
