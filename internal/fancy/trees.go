package fancy

import (
	"github.com/charmbracelet/lipgloss/tree"
)

// ComponentTree creates a component-specific styled tree
type ComponentTree struct {
	tree *tree.Tree
}

// NewComponentTree creates a new component tree with appropriate styling
func NewComponentTree(title string) *ComponentTree {
	t := tree.New()
	t.EnumeratorStyle(BranchStyle)
	t.Enumerator(tree.RoundedEnumerator)
	t.Root(title)

	return &ComponentTree{
		tree: t,
	}
}

// Tree returns the underlying tree
func (c *ComponentTree) Tree() *tree.Tree {
	return c.tree
}

// AddBranch adds a new branch with the given text
func (c *ComponentTree) AddBranch(text string) *tree.Tree {
	return c.tree.Child(text)
}

// AddChild adds a child node to the root branch
func (c *ComponentTree) AddChild(child any) *tree.Tree {
	return c.tree.Child(child)
}

// ModuleTree creates a tree for rendering a binding module table
func ModuleTree(name string) *ComponentTree {
	return NewComponentTree(TypeStyle.Render(name))
}

// ActorTree creates a tree branch for an actor declaration
func ActorTree(info string) *ComponentTree {
	return NewComponentTree(ActorStyle.Render(info))
}
