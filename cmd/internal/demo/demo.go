// Package demo holds the two example menus shared by the host and pico
// programs: a main menu and a settings sub-menu that call each other.
package demo

import (
	"time"

	"serialmenu/menu"
	"serialmenu/store"
	"serialmenu/x/strconvx"
)

// Addrs are the bulk-label addresses inside the image returned by Labels.
type Addrs struct {
	Second uint32
	Ratio  uint32
}

// Labels returns the bulk labels used by the menus and their addresses.
func Labels() (*store.Image, Addrs) {
	img := &store.Image{}
	a := Addrs{
		Second: img.Add("Z - second menu (text in bulk storage)"),
		Ratio:  img.Add("R - set ratio, fixed-point (text in bulk storage)"),
	}
	return img, a
}

// Looper is the part of the control loop an action may adjust.
type Looper interface {
	SetInterval(d time.Duration)
}

// Demo owns the menus and the values they edit.
type Demo struct {
	e    *menu.Engine
	loop Looper

	Var1, Var2 uint16
	Ratio      float32
	Period     int

	Main     []menu.Entry
	Settings []menu.Entry
}

// New builds both menus and loads the main one. loop may be nil.
func New(e *menu.Engine, a Addrs, loop Looper) *Demo {
	d := &Demo{e: e, loop: loop}
	d.Main = []menu.Entry{
		menu.NewEntry(menu.Text("1 - X (text in RAM)"), '1', menu.ActionFunc(func() { e.Println("choice X!") })),
		menu.NewEntry(menu.Text("Y - redisplay this menu"), 'y', menu.ActionFunc(e.Show)),
		menu.NewEntry(menu.Bulk(a.Second), 'Z', menu.ActionFunc(func() { d.open(d.Settings) })),
		menu.NewEntry(menu.Text("P - set loop period (ms)"), 'p', menu.ActionFunc(d.setPeriod)),
	}
	d.Settings = []menu.Entry{
		menu.NewEntry(menu.Text("E - execute foo()"), 'e', menu.ActionFunc(d.foo)),
		menu.NewEntry(menu.Text("S - set var2"), 'S', menu.ActionFunc(func() {
			if v, err := menu.ReadNumber[uint16](e.Context(), e, "var2: "); err == nil {
				d.Var2 = v
			}
		})),
		menu.NewEntry(menu.Bulk(a.Ratio), 'r', menu.ActionFunc(func() {
			if v, err := menu.ReadNumber[float32](e.Context(), e, "ratio: "); err == nil {
				d.Ratio = v
			}
		})),
		menu.NewEntry(menu.Text("K - read one key"), 'k', menu.ActionFunc(d.readKey)),
		menu.NewEntry(menu.Text("V - show values"), 'v', menu.ActionFunc(d.showValues)),
		menu.NewEntry(menu.Text("D - redisplay menu"), 'd', menu.ActionFunc(e.Show)),
		menu.NewEntry(menu.Text("B - back to main menu"), 'B', menu.ActionFunc(func() { d.open(d.Main) })),
	}
	_ = e.Load(d.Main, len(d.Main))
	return d
}

func (d *Demo) open(m []menu.Entry) {
	_ = d.e.Load(m, len(m))
	d.e.Show()
}

func (d *Demo) foo() {
	v, err := menu.ReadNumber[uint16](d.e.Context(), d.e, "")
	if err != nil {
		return
	}
	d.Var1 = v
	d.e.Println("Running foo!")
}

func (d *Demo) setPeriod() {
	ms, err := menu.ReadNumber[int](d.e.Context(), d.e, "period ms: ")
	if err != nil {
		return
	}
	if ms < 1 || ms > 65535 {
		d.e.Println("period must be 1..65535")
		return
	}
	d.Period = ms
	if d.loop != nil {
		d.loop.SetInterval(time.Duration(ms) * time.Millisecond)
	}
}

func (d *Demo) readKey() {
	d.e.Print("press a key: ")
	c, err := d.e.ReadChar(d.e.Context())
	if err != nil {
		return
	}
	d.e.Println("got " + strconvx.FormatUint(uint64(c), 10))
}

func (d *Demo) showValues() {
	d.e.Println("var1=" + strconvx.FormatUint(uint64(d.Var1), 10) +
		" var2=" + strconvx.FormatUint(uint64(d.Var2), 10) +
		" ratio=" + strconvx.FormatFloat(float64(d.Ratio), 'f', 2, 32))
}
