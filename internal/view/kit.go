package view

import (
	"github.com/five82/facet/internal/backend"
	"github.com/five82/facet/internal/semantic"
	"github.com/five82/facet/internal/style"
)

// Kit binds the message and result types once so pages can be written
// without repeating type arguments:
//
//	var k view.Kit[Msg, string]
//	page := k.VStack(k.Text("Hello").Bold(), k.Divider()).Spacing(8)
type Kit[M, R any] struct{}

func (Kit[M, R]) VStack(children ...View[M, R]) Stack[M, R] { return NewVStack(children...) }
func (Kit[M, R]) HStack(children ...View[M, R]) Stack[M, R] { return NewHStack(children...) }
func (Kit[M, R]) ZStack(children ...View[M, R]) ZStack[M, R] { return NewZStack(children...) }
func (Kit[M, R]) Wrap(children ...View[M, R]) Wrap[M, R] { return NewWrap(children...) }
func (Kit[M, R]) Grid(children ...View[M, R]) Grid[M, R] { return NewGrid(children...) }
func (Kit[M, R]) Form(sections ...View[M, R]) Form[M, R] { return NewForm(sections...) }

func (Kit[M, R]) Scroll(content View[M, R]) ScrollView[M, R] { return NewScrollView(content) }
func (Kit[M, R]) Container(content View[M, R]) Container[M, R] { return NewContainer(content) }
func (Kit[M, R]) Card(content View[M, R]) Card[M, R] { return NewCard(content) }
func (Kit[M, R]) Glass(content View[M, R]) GlassCard[M, R] { return NewGlassCard(content) }

func (Kit[M, R]) Section(title string, content View[M, R]) Section[M, R] {
	return NewSection(title, content)
}

func (Kit[M, R]) Text(content string) Text[M, R] { return NewText[M, R](content) }
func (Kit[M, R]) Markdown(source string) Markdown[M, R] { return NewMarkdown[M, R](source) }
func (Kit[M, R]) Icon(name string) Icon[M, R] { return NewIcon[M, R](name) }
func (Kit[M, R]) Divider() Divider[M, R] { return Divider[M, R]{} }
func (Kit[M, R]) Circle(radius float64) Circle[M, R] { return NewCircle[M, R](radius) }
func (Kit[M, R]) Image(path string) Media[M, R] { return NewImage[M, R](path) }
func (Kit[M, R]) Video(path string) Media[M, R] { return NewVideo[M, R](path) }
func (Kit[M, R]) WebView(url string) WebView[M, R] { return NewWebView[M, R](url) }
func (Kit[M, R]) Badge(label string) Badge[M, R] { return NewBadge[M, R](label) }
func (Kit[M, R]) Semantic(n semantic.Node) Semantic[M, R] { return Semantic[M, R]{Node: n} }
func (Kit[M, R]) RichText(spans ...backend.Span) RichText[M, R] {
	return NewRichText[M, R](spans...)
}

func (Kit[M, R]) Space(width, height style.Length) Space[M, R] {
	return NewSpace[M, R](width, height)
}

func (Kit[M, R]) Rectangle(width, height style.Length) Rectangle[M, R] {
	return NewRectangle[M, R](width, height)
}

func (Kit[M, R]) Capsule(width, height style.Length) Capsule[M, R] {
	return NewCapsule[M, R](width, height)
}

func (Kit[M, R]) Button(label string) Button[M, R] { return NewLabelButton[M, R](label) }

func (Kit[M, R]) ButtonWith(content View[M, R]) Button[M, R] { return NewButton(content) }

func (Kit[M, R]) Toggle(label string, active bool, onToggle func(bool) M) Toggle[M, R] {
	return NewToggle[M, R](label, active, onToggle)
}

func (Kit[M, R]) Slider(lo, hi, value float64, onChange func(float64) M) Slider[M, R] {
	return NewSlider[M, R](lo, hi, value, onChange)
}

func (Kit[M, R]) TextInput(value, placeholder string, onChange func(string) M) TextInput[M, R] {
	return NewTextInput[M, R](value, placeholder, onChange)
}

func (Kit[M, R]) SidebarItem(title, icon string, selected bool) SidebarItem[M, R] {
	return NewSidebarItem[M, R](title, icon, selected)
}

func (Kit[M, R]) Tag(v View[M, R], tag string) Tagged[M, R] { return Tag(v, tag) }
func (Kit[M, R]) Document(v View[M, R], doc string) Documented[M, R] { return Document(v, doc) }
func (Kit[M, R]) Protect(v View[M, R], reason string) Sudo[M, R] { return Protect(v, reason) }
func (Kit[M, R]) Lift(v View[M, R], z float64) PhysicalDepth[M, R] { return Lift(v, z) }
func (Kit[M, R]) OnTap(v View[M, R], msg M) Tap[M, R] { return OnTap(v, msg) }
func (Kit[M, R]) Billboard(v View[M, R], active bool) Billboard[M, R] { return Billboarded(v, active) }

func (Kit[M, R]) Transform(v View[M, R], t backend.Transform) Transformed[M, R] {
	return Transform(v, t)
}

func (Kit[M, R]) Responsive(pick func(style.DeviceType) View[M, R]) Func[M, R] {
	return Responsive(pick)
}
