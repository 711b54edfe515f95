package ast

import (
	"fmt"
	"io"
)

// Kind tags the variant a Node represents. A single struct type carries
// every variant's fields (following the tagged-union shape blackfriday
// popularized) rather than one Go type per node kind, since the tree is
// built once by the parser and never grows new variants at runtime.
type Kind int

// Block variants.
const (
	_ Kind = iota
	Document
	Heading
	Paragraph
	BlockQuote
	List
	Item
	CodeBlock
	HTMLBlock
	ThematicBreak
	Table
	TableHead
	TableBody
	TableRow
	TableCell
	Admonition
	TabBlock
	Tab
	Slideshow
	Slide
	FootnoteDefinition
	MathBlock

	firstInline
	// Inline variants.
	Text
	SoftBreak
	HardBreak
	Emphasis
	Strong
	Strikethrough
	Highlight
	Superscript
	Subscript
	Code
	Link
	Image
	Autolink
	RawHTML
	FootnoteReference
	InlineFootnote
	TaskMarker
	UserMention
	EmojiShortcode
	MathInline
)

// IsInline reports whether k tags one of the within-paragraph variants.
func (k Kind) IsInline() bool { return k > firstInline }

// IsBlock reports whether k tags one of the top-level structural variants.
func (k Kind) IsBlock() bool { return k != 0 && k < firstInline }

// Align is a table column or cell alignment.
type Align int

// Alignment values, matching the `:---`/`:---:`/`---:` delimiter row forms.
const (
	AlignNone Align = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// AutolinkKind distinguishes the two Autolink forms.
type AutolinkKind int

// Autolink kinds.
const (
	AutolinkNone AutolinkKind = iota
	AutolinkURL
	AutolinkEmail
)

// TaskState is the checked/unchecked/absent state of a task list item or
// inline task marker.
type TaskState int

// Task states.
const (
	NoTask TaskState = iota
	Unchecked
	Checked
)

// Node is a single element of the AST. Depending on Kind, only a subset of
// its fields are meaningful; see the field comments below for the mapping.
// The zero Node is not valid; construct with New.
type Node struct {
	Kind Kind
	Span Span

	Parent     *Node
	FirstChild *Node
	LastChild  *Node
	Next       *Node
	Prev       *Node

	// Literal holds raw text for: Text, Code, CodeBlock (content),
	// HTMLBlock, RawHTML, MathBlock, MathInline, EmojiShortcode (shortcode
	// name without colons).
	Literal string

	// Level is the heading level (1..6).
	Level int

	// ID is an explicit or derived heading anchor id.
	ID string

	// InfoString is a fenced code block's info string.
	InfoString string

	// Destination is a Link/Image/Autolink URL target.
	Destination string

	// Title is a Link/Image title, a Tab's name, or a TabBlock's title.
	Title string

	// Ordered, Start and Tight describe a List.
	Ordered bool
	Start   int
	Tight   bool

	// Delimiter is the list marker byte family (-, *, +, ., )) for List and
	// Item, or the fence byte (`, ~) for CodeBlock.
	Delimiter byte

	// Task is the checklist state of an Item or a standalone TaskMarker.
	Task TaskState

	// Align is a TableCell's own alignment; Alignments is the full column
	// alignment list carried on the Table node itself.
	Align      Align
	Alignments []Align

	// Header marks a TableRow that belongs to the table's head.
	Header bool

	// Label holds a normalized reference label for FootnoteReference,
	// FootnoteDefinition and InlineFootnote (synthesized for the latter).
	Label string

	// Number is the 1-based footnote ordinal assigned by first-reference
	// order, filled in during reference resolution.
	Number int

	// AutoKind distinguishes Autolink variants.
	AutoKind AutolinkKind

	// AdmonitionKind is the normalized admonition kind ("note", "warning",
	// ...); AdmonitionTitle is its rendered title text, when present.
	AdmonitionKind  string
	AdmonitionTitle string

	// Username, Platform and Display describe a UserMention.
	Username string
	Platform string
	Display  string

	// Timer is a Slideshow's optional per-slide timer, in seconds.
	Timer int
}

// New allocates a detached Node of the given kind.
func New(kind Kind) *Node {
	return &Node{Kind: kind}
}

// AppendChild appends child as the receiver's new last child, detaching it
// from any previous tree first.
func (n *Node) AppendChild(child *Node) {
	child.Unlink()
	child.Parent = n
	if n.LastChild != nil {
		n.LastChild.Next = child
		child.Prev = n.LastChild
		n.LastChild = child
	} else {
		n.FirstChild = child
		n.LastChild = child
	}
}

// InsertBefore inserts sibling immediately before the receiver in its
// parent's child list, detaching sibling from any previous tree first.
// Panics if the receiver is unparented.
func (n *Node) InsertBefore(sibling *Node) {
	if n.Parent == nil {
		panic("ast: InsertBefore on unparented node")
	}
	sibling.Unlink()
	sibling.Parent = n.Parent
	sibling.Next = n
	sibling.Prev = n.Prev
	if n.Prev != nil {
		n.Prev.Next = sibling
	} else {
		n.Parent.FirstChild = sibling
	}
	n.Prev = sibling
}

// Unlink removes the receiver from its parent's child list, leaving it
// detached with no Parent/Next/Prev.
func (n *Node) Unlink() {
	if n.Next != nil {
		n.Next.Prev = n.Prev
	} else if n.Parent != nil {
		n.Parent.LastChild = n.Prev
	}
	if n.Prev != nil {
		n.Prev.Next = n.Next
	} else if n.Parent != nil {
		n.Parent.FirstChild = n.Next
	}
	n.Parent = nil
	n.Next = nil
	n.Prev = nil
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	count := 0
	for c := n.FirstChild; c != nil; c = c.Next {
		count++
	}
	return count
}

// WalkStatus is returned by a Walk visitor to control tree descent,
// matching the shape blackfriday's Node.Walk popularized.
type WalkStatus int

// Walk status values.
const (
	GoToNext WalkStatus = iota
	SkipChildren
	Terminate
)

// WalkFunc is called once on entering and once on leaving every visited
// node. Returning SkipChildren on entry skips the node's children but
// still delivers its exit call; Terminate stops the walk at once.
type WalkFunc func(n *Node, entering bool) WalkStatus

// Walk performs a depth-first traversal of the receiver's subtree,
// invoking fn on entry and on exit of each node.
func (n *Node) Walk(fn WalkFunc) WalkStatus {
	if n == nil {
		return GoToNext
	}
	status := fn(n, true)
	if status == Terminate {
		return Terminate
	}
	if status != SkipChildren {
		for c := n.FirstChild; c != nil; {
			next := c.Next // fn may mutate the tree
			if c.Walk(fn) == Terminate {
				return Terminate
			}
			c = next
		}
	}
	if fn(n, false) == Terminate {
		return Terminate
	}
	return GoToNext
}

// Format implements fmt.Formatter, printing "Kind" normally or
// "Kind field=value ..." under the `%+v` verb.
func (n *Node) Format(f fmt.State, verb rune) {
	if n == nil {
		io.WriteString(f, "<nil>")
		return
	}
	io.WriteString(f, n.Kind.String())
	if !f.Flag('+') {
		return
	}
	switch n.Kind {
	case Heading:
		fmt.Fprintf(f, " level=%d id=%q", n.Level, n.ID)
	case CodeBlock:
		fmt.Fprintf(f, " info=%q", n.InfoString)
	case List:
		fmt.Fprintf(f, " ordered=%v start=%d tight=%v", n.Ordered, n.Start, n.Tight)
	case Item:
		fmt.Fprintf(f, " task=%v", n.Task)
	case Link, Image, Autolink:
		fmt.Fprintf(f, " dest=%q title=%q", n.Destination, n.Title)
	case Table:
		fmt.Fprintf(f, " align=%v", n.Alignments)
	case Admonition:
		fmt.Fprintf(f, " kind=%q", n.AdmonitionKind)
	case FootnoteReference, FootnoteDefinition, InlineFootnote:
		fmt.Fprintf(f, " label=%q number=%d", n.Label, n.Number)
	case UserMention:
		fmt.Fprintf(f, " username=%q platform=%q", n.Username, n.Platform)
	case EmojiShortcode, Text, Code:
		fmt.Fprintf(f, " literal=%q", n.Literal)
	}
}

// String names the Kind.
func (k Kind) String() string {
	switch k {
	case Document:
		return "Document"
	case Heading:
		return "Heading"
	case Paragraph:
		return "Paragraph"
	case BlockQuote:
		return "BlockQuote"
	case List:
		return "List"
	case Item:
		return "Item"
	case CodeBlock:
		return "CodeBlock"
	case HTMLBlock:
		return "HTMLBlock"
	case ThematicBreak:
		return "ThematicBreak"
	case Table:
		return "Table"
	case TableHead:
		return "TableHead"
	case TableBody:
		return "TableBody"
	case TableRow:
		return "TableRow"
	case TableCell:
		return "TableCell"
	case Admonition:
		return "Admonition"
	case TabBlock:
		return "TabBlock"
	case Tab:
		return "Tab"
	case Slideshow:
		return "Slideshow"
	case Slide:
		return "Slide"
	case FootnoteDefinition:
		return "FootnoteDefinition"
	case MathBlock:
		return "MathBlock"
	case Text:
		return "Text"
	case SoftBreak:
		return "SoftBreak"
	case HardBreak:
		return "HardBreak"
	case Emphasis:
		return "Emphasis"
	case Strong:
		return "Strong"
	case Strikethrough:
		return "Strikethrough"
	case Highlight:
		return "Highlight"
	case Superscript:
		return "Superscript"
	case Subscript:
		return "Subscript"
	case Code:
		return "Code"
	case Link:
		return "Link"
	case Image:
		return "Image"
	case Autolink:
		return "Autolink"
	case RawHTML:
		return "RawHTML"
	case FootnoteReference:
		return "FootnoteReference"
	case InlineFootnote:
		return "InlineFootnote"
	case TaskMarker:
		return "TaskMarker"
	case UserMention:
		return "UserMention"
	case EmojiShortcode:
		return "EmojiShortcode"
	case MathInline:
		return "MathInline"
	default:
		return fmt.Sprintf("InvalidKind%d", int(k))
	}
}

func (t TaskState) String() string {
	switch t {
	case Unchecked:
		return "Unchecked"
	case Checked:
		return "Checked"
	default:
		return "NoTask"
	}
}

func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "none"
	}
}
