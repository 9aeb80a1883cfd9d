package expand

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"editor-assets/internal/replacement"
	"editor-assets/internal/tagtree"
)

// shape is a comparable view of a tag tree.
type shape struct {
	Title    string
	Children []shape
}

func shapeOf(nodes []*tagtree.Node) []shape {
	if nodes == nil {
		return nil
	}

	out := make([]shape, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, shape{Title: n.Title, Children: shapeOf(n.Children)})
	}

	return out
}

func decode(t *testing.T, input string) []*tagtree.Node {
	t.Helper()

	nodes, _, err := tagtree.Decode([]byte(input))
	require.NoError(t, err)

	return nodes
}

func curatedTable(t *testing.T) *replacement.Table {
	t.Helper()

	table, _, err := replacement.Default()
	require.NoError(t, err)

	return table
}

func requireShape(t *testing.T, want []shape, got []*tagtree.Node) {
	t.Helper()

	if diff := cmp.Diff(want, shapeOf(got)); diff != "" {
		t.Fatalf("tree mismatch (-want +got):\n%s\ngot: %s", diff, spew.Sdump(shapeOf(got)))
	}
}

func TestMerge(t *testing.T) {
	primaryB := tagtree.New("B", tagtree.New("from primary"))
	secondaryB := tagtree.New("B", tagtree.New("from secondary"))

	primary := []*tagtree.Node{tagtree.New("A"), primaryB}
	secondary := []*tagtree.Node{secondaryB, tagtree.New("C")}

	merged := Merge(primary, secondary)

	assert.Equal(t, []string{"A", "B", "C"}, tagtree.Titles(merged))
	assert.Same(t, primaryB, merged[1])
}

func TestMergeSkipsEmptyAndRepeatedTitles(t *testing.T) {
	tests := []struct {
		name      string
		primary   []string
		secondary []string
		expected  []string
	}{
		{"both empty", nil, nil, []string{}},
		{"blank titles dropped", []string{"", "  "}, []string{"A", " "}, []string{"A"}},
		{"duplicates within primary", []string{"A", "A", "B"}, nil, []string{"A", "B"}},
		{"trimmed titles collide", []string{"A"}, []string{" A "}, []string{"A"}},
		{"secondary only", nil, []string{"X", "Y", "X"}, []string{"X", "Y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			build := func(titles []string) []*tagtree.Node {
				var out []*tagtree.Node
				for _, s := range titles {
					out = append(out, tagtree.New(s))
				}

				return out
			}

			got := Merge(build(tt.primary), build(tt.secondary))
			assert.Equal(t, tt.expected, tagtree.Titles(got))
		})
	}
}

func TestRunWithoutPlaceholdersKeepsTree(t *testing.T) {
	input := `[
		{"title": "知识点标签", "children": [
			{"title": "语法", "children": [{"title": "名词"}, {"title": "动词", "children": []}]},
			{"title": "词汇"}
		]},
		{"title": "其他"}
	]`

	nodes := decode(t, input)
	before, err := tagtree.Encode(nodes)
	require.NoError(t, err)

	res := New(curatedTable(t), nil).Run(nodes)

	after, err := tagtree.Encode(res.Nodes)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
	assert.Equal(t, Stats{}, res.Stats)
	assert.Empty(t, res.Resolutions)
}

func TestRunKeepsNullTitle(t *testing.T) {
	nodes := decode(t, `[{"title": null, "children": [{"title": "中"}]}]`)

	res := New(curatedTable(t), nil).Run(nodes)

	out, err := tagtree.Encode(res.Nodes)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"title": null`)
	assert.NotContains(t, string(out), `"title": ""`)
	requireShape(t, []shape{{Title: "", Children: []shape{{Title: "中"}}}}, res.Nodes)
}

func TestRunCuratedReplacement(t *testing.T) {
	input := `[{"title": "知识点标签", "children": [
		{"title": "语篇主题", "children": [
			{"title": "初中", "children": [
				{"title": "人与自我", "children": [
					{"title": "个人情况", "children": [
						{"title": "10个子主题，例如：个人信息；个人经历"}
					]}
				]}
			]}
		]}
	]}]`

	nodes := decode(t, input)
	res := New(curatedTable(t), nil).Run(nodes)

	target := res.Nodes[0].Children[0].Children[0].Children[0].Children[0]
	require.Equal(t, "个人情况", target.Title)
	assert.Equal(t, []string{
		"个人信息", "个人经历", "外貌与性格", "兴趣与爱好", "家庭情况",
		"学习与成长", "目标与理想", "情绪与感受", "国籍与语言", "联系方式",
	}, tagtree.Titles(target.Children))

	for _, c := range target.Children {
		assert.True(t, c.IsLeaf())
	}

	assert.Equal(t, Stats{Found: 1, Replaced: 1, Removed: 0}, res.Stats)
	require.Len(t, res.Resolutions, 1)
	assert.Equal(t, OutcomeCurated, res.Resolutions[0].Outcome)
	assert.Equal(t, 10, res.Resolutions[0].Produced)
	assert.Equal(t, "知识点标签 / 语篇主题 / 初中 / 人与自我 / 个人情况", res.Resolutions[0].Path.String())
}

func TestRunCuratedCountsPlaceholderRows(t *testing.T) {
	table := replacement.NewTable()
	require.NoError(t, table.Add(tagtree.NewPath("root"), []*tagtree.Node{
		tagtree.New("甲"), tagtree.New("乙"), tagtree.New("丙"),
	}))

	nodes := decode(t, `[{"title": " root ", "children": [
		{"title": "2个子项"},
		{"title": "保留", "children": [{"title": "叶"}]},
		{"title": "3个子主题，例如：x；y"}
	]}]`)

	res := New(table, nil).Run(nodes)

	requireShape(t, []shape{{Title: " root ", Children: []shape{
		{Title: "甲"}, {Title: "乙"}, {Title: "丙"},
		{Title: "保留", Children: []shape{{Title: "叶"}}},
	}}}, res.Nodes)
	assert.Equal(t, Stats{Found: 2, Replaced: 2}, res.Stats)
}

func TestRunExampleFallback(t *testing.T) {
	nodes := decode(t, `[{"title": "颜色", "children": [
		{"title": "2个子项，例如：红色，蓝色"},
		{"title": "绿色"},
		{"title": "2个子主题，例如：蓝色；黄色"}
	]}]`)

	res := New(replacement.NewTable(), nil).Run(nodes)

	requireShape(t, []shape{{Title: "颜色", Children: []shape{
		{Title: "红色"}, {Title: "蓝色"}, {Title: "黄色"}, {Title: "绿色"},
	}}}, res.Nodes)
	assert.Equal(t, Stats{Found: 2, Replaced: 2}, res.Stats)
	require.Len(t, res.Resolutions, 1)
	assert.Equal(t, OutcomeExamples, res.Resolutions[0].Outcome)
	assert.Equal(t, 4, res.Resolutions[0].Produced)
}

func TestRunRemovesUnresolvablePlaceholders(t *testing.T) {
	nodes := decode(t, `[{"title": "未整理", "children": [{"title": "5个子主题"}]}]`)

	res := New(nil, nil).Run(nodes)

	assert.Equal(t, Stats{Found: 1, Removed: 1}, res.Stats)
	assert.True(t, res.Nodes[0].IsLeaf())

	out, err := tagtree.Encode(res.Nodes)
	require.NoError(t, err)
	assert.Equal(t, "[\n  {\n    \"title\": \"未整理\"\n  }\n]\n", string(out))
	assert.Equal(t, OutcomeRemoved, res.Resolutions[0].Outcome)
}

func TestRunRemovedKeepsNormalChildren(t *testing.T) {
	nodes := decode(t, `[{"title": "a", "children": [{"title": "b"}, {"title": "3个子项（略）"}, {"title": "c"}]}]`)

	res := New(nil, nil).Run(nodes)

	requireShape(t, []shape{{Title: "a", Children: []shape{{Title: "b"}, {Title: "c"}}}}, res.Nodes)
	assert.Equal(t, Stats{Found: 1, Removed: 1}, res.Stats)
}

func TestRunCuratedWinsTitleCollision(t *testing.T) {
	table := replacement.NewTable()
	require.NoError(t, table.Add(tagtree.NewPath("root"), []*tagtree.Node{tagtree.New("同名")}))

	nodes := decode(t, `[{"title": "root", "children": [
		{"title": "同名", "children": [{"title": "会被丢弃"}]},
		{"title": "1个子项"}
	]}]`)

	res := New(table, nil).Run(nodes)

	requireShape(t, []shape{{Title: "root", Children: []shape{{Title: "同名"}}}}, res.Nodes)
}

func TestRunNestedPlaceholdersUseFullPath(t *testing.T) {
	table := replacement.NewTable()
	require.NoError(t, table.Add(tagtree.NewPath("a", "b"), []*tagtree.Node{tagtree.New("curated")}))

	nodes := decode(t, `[
		{"title": "a", "children": [
			{"title": "b", "children": [{"title": "1个子项"}]},
			{"title": "c", "children": [{"title": "1个子项，例如：来自示例"}]}
		]},
		{"title": "b", "children": [{"title": "1个子项"}]}
	]`)

	res := New(table, nil).Run(nodes)

	requireShape(t, []shape{
		{Title: "a", Children: []shape{
			{Title: "b", Children: []shape{{Title: "curated"}}},
			{Title: "c", Children: []shape{{Title: "来自示例"}}},
		}},
		{Title: "b"},
	}, res.Nodes)
	assert.Equal(t, Stats{Found: 3, Replaced: 2, Removed: 1}, res.Stats)
}

func TestRunTopLevelPlaceholderIsNotExpanded(t *testing.T) {
	nodes := decode(t, `[{"title": "3个子项，例如：a；b；c"}]`)

	res := New(nil, nil).Run(nodes)

	requireShape(t, []shape{{Title: "3个子项，例如：a；b；c"}}, res.Nodes)
	assert.Equal(t, Stats{}, res.Stats)
}

func TestRunIsIdempotentWithCuratedTable(t *testing.T) {
	input := `[{"title": "知识点标签", "children": [
		{"title": "语篇主题", "children": [
			{"title": "初中", "children": [
				{"title": "人与自我", "children": [
					{"title": "个人情况", "children": [{"title": "10个子主题"}]},
					{"title": "个人兴趣", "children": [{"title": "游戏"}, {"title": "8个子主题"}]}
				]}
			]}
		]}
	]}]`

	table := curatedTable(t)

	first := New(table, nil).Run(decode(t, input))
	firstOut, err := tagtree.Encode(first.Nodes)
	require.NoError(t, err)

	second := New(table, nil).Run(decode(t, input))
	secondOut, err := tagtree.Encode(second.Nodes)
	require.NoError(t, err)

	assert.Equal(t, string(firstOut), string(secondOut))
	assert.Equal(t, first.Stats, second.Stats)

	again := New(table, nil).Run(first.Nodes)
	againOut, err := tagtree.Encode(again.Nodes)
	require.NoError(t, err)
	assert.Equal(t, string(firstOut), string(againOut))
	assert.Equal(t, 0, again.Stats.Found)
}

func TestRunDoesNotAliasTableNodes(t *testing.T) {
	table := replacement.NewTable()
	require.NoError(t, table.Add(tagtree.NewPath("r"), []*tagtree.Node{tagtree.New("x")}))

	nodes := decode(t, `[
		{"title": "r", "children": [{"title": "1个子项"}]},
		{"title": "r", "children": [{"title": "1个子项"}]}
	]`)

	res := New(table, nil).Run(nodes)
	res.Nodes[0].Children[0].Title = "changed"

	assert.Equal(t, "x", res.Nodes[1].Children[0].Title)
}

func TestStatsString(t *testing.T) {
	s := Stats{Found: 3, Replaced: 2, Removed: 1}
	assert.Equal(t, "placeholders found=3 replaced=2 removed=1", s.String())
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "Curated", OutcomeCurated.String())
	assert.Equal(t, "Examples", OutcomeExamples.String())
	assert.Equal(t, "Removed", OutcomeRemoved.String())
	assert.Equal(t, "Outcome(0)", Outcome(0).String())
}
