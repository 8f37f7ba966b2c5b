package a11y

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/five82/facet/internal/semantic"
	"github.com/five82/facet/internal/style"
	"github.com/five82/facet/internal/view"
)

func sampleTree() semantic.Node {
	return semantic.New("vstack").WithChildren(
		semantic.New("text").WithContent("Title"),
		semantic.New("hstack").WithChildren(
			semantic.New("button").WithLabel("Save").
				WithAccessibility(semantic.NewAccessibility(semantic.RoleButton, "Save").WithState(semantic.StateFocused)),
			semantic.New("button").WithLabel("Run").Protect("Execute shell command: `ls`").Disable(),
		),
		semantic.New("divider"),
	)
}

func TestUpdateBroadcastsRootOnce(t *testing.T) {
	b := NewBridge(nil)
	var events []Event
	b.Handle(func(ev Event) error {
		events = append(events, ev)
		return nil
	})

	root := sampleTree()
	b.Update(root)

	require.Len(t, events, 1)
	assert.Equal(t, NodeUpdated, events[0].Kind)
	assert.Equal(t, "vstack", events[0].Node.Role)
	assert.Equal(t, "node_updated", events[0].Kind.String())
}

func TestHandlersRunInOrderDespiteErrors(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	b := NewBridge(zap.New(core))

	var order []string
	b.Handle(func(Event) error {
		order = append(order, "first")
		return errors.New("screen reader unavailable")
	})
	b.Handle(func(Event) error {
		order = append(order, "second")
		return nil
	})
	var visited int
	b.AddVisitor(VisitorFunc(func([]int, semantic.Node) { visited++ }))

	b.Update(sampleTree())

	assert.Equal(t, []string{"first", "second"}, order)
	assert.Equal(t, 6, visited)

	failed := logs.FilterMessage("accessibility handler failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, "screen reader unavailable", failed[0].ContextMap()["error"])
	assert.EqualValues(t, 0, failed[0].ContextMap()["handler"])
}

func TestDisabledBridgeDoesNothing(t *testing.T) {
	b := NewBridge(nil)
	calls := 0
	b.Handle(func(Event) error { calls++; return nil })
	tree := &Tree{}
	b.AddVisitor(tree)

	b.SetEnabled(false)
	assert.False(t, b.Enabled())
	b.Update(sampleTree())
	assert.Zero(t, calls)
	assert.Zero(t, tree.Len())

	b.SetEnabled(true)
	b.Update(sampleTree())
	assert.Equal(t, 1, calls)
	assert.Equal(t, 6, tree.Len())
}

func TestVisitorPathsFollowChildOrder(t *testing.T) {
	b := NewBridge(nil)
	var paths [][]int
	var roles []string
	b.AddVisitor(VisitorFunc(func(path []int, n semantic.Node) {
		paths = append(paths, append([]int(nil), path...))
		roles = append(roles, n.Role)
	}))

	b.Update(sampleTree())

	assert.Equal(t, [][]int{nil, {0}, {1}, {1, 0}, {1, 1}, {2}}, paths)
	assert.Equal(t, []string{"vstack", "text", "hstack", "button", "button", "divider"}, roles)
}

func TestTreeFlattensWithParents(t *testing.T) {
	b := NewBridge(nil)
	tree := &Tree{}
	b.AddVisitor(tree)
	b.Update(sampleTree())

	nodes := tree.Nodes()
	require.Len(t, nodes, 6)
	assert.Equal(t, -1, nodes[0].Parent)
	assert.Equal(t, semantic.RoleGroup, nodes[0].Role)
	assert.Equal(t, semantic.RoleStaticText, nodes[1].Role)
	assert.Equal(t, "Title", nodes[1].Label)
	assert.Equal(t, 2, nodes[3].Parent)
	assert.Equal(t, 2, nodes[4].Parent)
	assert.Equal(t, 0, nodes[5].Parent)
	assert.Equal(t, semantic.RoleNone, nodes[5].Role)
	assert.Len(t, tree.Children(2), 2)

	save, ok := tree.Find(semantic.RoleButton, "Save")
	require.True(t, ok)
	assert.True(t, save.States.Has(semantic.StateFocused))

	run, ok := tree.Find(semantic.RoleButton, "Run")
	require.True(t, ok)
	assert.True(t, run.Protected)
	assert.True(t, run.Disabled)

	focusable := tree.Focusable()
	require.Len(t, focusable, 1)
	assert.Equal(t, "Save", focusable[0].Label)

	assert.Equal(t,
		"Group\n  StaticText \"Title\"\n  Group\n    Button \"Save\" [focused]\n    Button \"Run\" [disabled, protected]\n",
		tree.String())

	b.Update(semantic.New("text").WithContent("again"))
	assert.Equal(t, 1, tree.Len())
}

func TestTreeFromViewDescription(t *testing.T) {
	var k view.Kit[string, string]
	page := k.Form(
		k.Toggle("Wifi", true, nil),
		k.Slider(0, 10, 3, nil),
		k.TextInput("", "Search", nil),
	)
	ctx := style.NewContext(style.DefaultTokens(), style.Size{Width: 800, Height: 600})

	b := NewBridge(nil)
	tree := &Tree{}
	b.AddVisitor(tree)
	b.Update(page.Describe(ctx))

	wifi, ok := tree.Find(semantic.RoleSwitch, "Wifi")
	require.True(t, ok)
	assert.True(t, wifi.States.Has(semantic.StateChecked))

	assert.Len(t, tree.Focusable(), 3)
}

func TestRoleFor(t *testing.T) {
	assert.Equal(t, semantic.RoleButton, RoleFor("Button"))
	assert.Equal(t, semantic.RoleTextField, RoleFor("text_input"))
	assert.Equal(t, semantic.RoleNone, RoleFor("space"))
	assert.Equal(t, semantic.RoleNone, RoleFor(""))
}
