package main

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/blockdown/internal/block"
	"github.com/dshills/blockdown/internal/config"
	"github.com/dshills/blockdown/internal/editor"
	"github.com/dshills/blockdown/internal/input/key"
)

// session holds the state of one interactive editing session.
type session struct {
	ed     *editor.Editor
	screen tcell.Screen
	log    *editor.Logger

	// mu guards cfg and status, both written by the config watcher's
	// reload goroutine while the event loop reads them.
	mu     sync.Mutex
	cfg    config.Config
	status string

	// caret is the grapheme offset within the current block's content.
	caret    int
	savePath string
	dirty    bool
	quit     bool
}

// runEdit drives a terminal editing session until the user quits.
func runEdit(ed *editor.Editor, cfg config.Config, opts options) int {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer screen.Fini()

	s := &session{
		ed:       ed,
		screen:   screen,
		log:      editor.NewLogger(editor.LogLevelError, os.Stderr),
		cfg:      cfg,
		savePath: savePath(opts),
		status:   "Ctrl+S save | Ctrl+Q quit | Alt+1..3 heading | Alt+0 paragraph",
	}

	if opts.configPath != "" {
		watcher, err := config.Watch(opts.configPath, s.reloadConfig)
		if err == nil {
			defer watcher.Close()
		}
	}

	for !s.quit {
		s.draw()
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			s.handleKey(ev)
		}
		ed.FlushFrame()
	}
	return 0
}

func savePath(opts options) string {
	if opts.output != "" && opts.output != "-" {
		return opts.output
	}
	if opts.input != "" && opts.input != "-" {
		return opts.input
	}
	return "blockdown.md"
}

func (s *session) reloadConfig(cfg config.Config, err error) {
	if err != nil {
		s.log.Warn("config reload failed: %v", err)
		return
	}
	s.mu.Lock()
	s.cfg = cfg
	s.status = "configuration reloaded"
	s.mu.Unlock()
}

func (s *session) setStatus(msg string) {
	s.mu.Lock()
	s.status = msg
	s.mu.Unlock()
}

func (s *session) statusLine() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *session) triggerEnabled(trigger string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.TriggerEnabled(trigger)
}

func (s *session) tabWidth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cfg.TabWidth < 1 {
		return 4
	}
	return s.cfg.TabWidth
}

func (s *session) handleKey(ev *tcell.EventKey) {
	cur := s.ed.Current()
	if cur == nil {
		return
	}

	switch {
	case ev.Key() == tcell.KeyCtrlQ || ev.Key() == tcell.KeyEscape:
		s.quit = true
		return
	case ev.Key() == tcell.KeyCtrlS:
		s.save()
		return
	case ev.Modifiers()&tcell.ModAlt != 0 && ev.Key() == tcell.KeyRune:
		if t, ok := convertTarget(ev.Rune()); ok {
			if err := s.ed.ConvertCurrent(t); err != nil {
				s.setStatus(err.Error())
			} else {
				s.dirty = true
			}
			return
		}
	}

	switch ev.Key() {
	case tcell.KeyUp:
		s.moveCurrent(-1)
		return
	case tcell.KeyDown:
		s.moveCurrent(1)
		return
	case tcell.KeyLeft:
		if s.caret > 0 {
			s.caret--
		}
		return
	case tcell.KeyRight:
		if s.caret < block.ContentLength(cur.Content) {
			s.caret++
		}
		return
	case tcell.KeyHome:
		s.caret = 0
		return
	case tcell.KeyEnd:
		s.caret = block.ContentLength(cur.Content)
		return
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		s.backspace(cur)
		return
	case tcell.KeyDelete:
		s.deleteForward(cur)
		return
	}

	kev, ok := toKeyEvent(ev)
	if !ok {
		return
	}
	// Control runes the terminal may deliver carry no edit meaning.
	if !kev.Key.IsSpecial() && !kev.IsChar() {
		return
	}

	target := s.ed.ElementFor(cur)
	if s.ed.HandleKey(target, kev, s.caret) {
		s.afterStructural(kev)
		s.dirty = true
		return
	}

	// The controller declined: apply the surface defaults.
	switch kev.Key {
	case key.KeyEnter:
		s.insertText(cur, "\n")
	case key.KeyRune:
		s.insertText(cur, string(kev.Rune))
		if kev.Rune == ' ' {
			s.tryTrigger(cur)
		}
	case key.KeySpace:
		s.insertText(cur, " ")
		s.tryTrigger(cur)
	}
}

// afterStructural resyncs the caret after the controller consumed a key.
func (s *session) afterStructural(ev key.Event) {
	cur := s.ed.Current()
	if cur == nil {
		s.caret = 0
		return
	}
	switch ev.Key {
	case key.KeyEnter:
		// A split binds the trailing half as current.
		s.caret = 0
	case key.KeyTab:
		s.caret++
	}
	if n := block.ContentLength(cur.Content); s.caret > n {
		s.caret = n
	}
}

func (s *session) insertText(b *block.Block, text string) {
	left, right := block.SplitContent(b.Content, s.caret)
	b.Content = left + text + right
	s.caret += block.ContentLength(text)
	s.ed.Update()
	s.dirty = true
}

// tryTrigger converts the current block when its content matches an
// enabled markdown trigger.
func (s *session) tryTrigger(b *block.Block) {
	t, ok := block.TriggerType(b.Content)
	if !ok {
		return
	}
	for _, trigger := range block.MarkdownTriggers(t) {
		if strings.HasPrefix(b.Content, trigger) {
			if !s.triggerEnabled(trigger) {
				return
			}
			break
		}
	}
	if s.ed.ApplyTrigger() {
		cur := s.ed.Current()
		s.caret = block.ContentLength(cur.Content)
	}
}

func (s *session) backspace(cur *block.Block) {
	if s.caret == 0 {
		prev := previousBlock(s.ed, cur)
		if prev == nil {
			return
		}
		at := block.ContentLength(prev.Content)
		if err := s.ed.MergeWithPrevious(); err != nil {
			s.setStatus(err.Error())
			return
		}
		s.caret = at
		s.dirty = true
		return
	}
	left, right := block.SplitContent(cur.Content, s.caret)
	trimmed, _ := block.SplitContent(left, block.ContentLength(left)-1)
	cur.Content = trimmed + right
	s.caret--
	s.ed.Update()
	s.dirty = true
}

func (s *session) deleteForward(cur *block.Block) {
	if s.caret >= block.ContentLength(cur.Content) {
		return
	}
	left, right := block.SplitContent(cur.Content, s.caret)
	_, rest := block.SplitContent(right, 1)
	cur.Content = left + rest
	s.ed.Update()
	s.dirty = true
}

func (s *session) moveCurrent(delta int) {
	blocks := s.ed.Blocks()
	cur := s.ed.Current()
	for i, b := range blocks {
		if b == cur {
			j := i + delta
			if j < 0 || j >= len(blocks) {
				return
			}
			s.ed.SetCurrent(blocks[j])
			if n := block.ContentLength(blocks[j].Content); s.caret > n {
				s.caret = n
			}
			return
		}
	}
}

func previousBlock(ed *editor.Editor, cur *block.Block) *block.Block {
	blocks := ed.Blocks()
	for i, b := range blocks {
		if b == cur && i > 0 {
			return blocks[i-1]
		}
	}
	return nil
}

func (s *session) save() {
	content := s.ed.Markdown()
	if err := os.WriteFile(s.savePath, []byte(content+"\n"), 0o644); err != nil {
		s.setStatus(fmt.Sprintf("save failed: %v", err))
		return
	}
	s.dirty = false
	s.setStatus(fmt.Sprintf("saved %s", s.savePath))
}

// convertTarget maps Alt+rune shortcuts to block kinds.
func convertTarget(r rune) (block.Type, bool) {
	switch r {
	case '0':
		return block.Paragraph, true
	case '1':
		return block.H1, true
	case '2':
		return block.H2, true
	case '3':
		return block.H3, true
	case 'c':
		return block.Code, true
	case 't':
		return block.TaskList, true
	case 'u':
		return block.UnorderedList, true
	case 'o':
		return block.OrderedList, true
	case 'b':
		return block.Table, true
	}
	return block.Paragraph, false
}

// toKeyEvent converts a tcell key event into the controller's form.
func toKeyEvent(ev *tcell.EventKey) (key.Event, bool) {
	mods := key.ModNone
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		mods |= key.ModCtrl
	}
	if ev.Modifiers()&tcell.ModAlt != 0 {
		mods |= key.ModAlt
	}
	if ev.Modifiers()&tcell.ModShift != 0 {
		mods |= key.ModShift
	}

	switch ev.Key() {
	case tcell.KeyEnter:
		return key.NewSpecialEvent(key.KeyEnter, mods), true
	case tcell.KeyTab:
		return key.NewSpecialEvent(key.KeyTab, mods), true
	case tcell.KeyCtrlSpace:
		return key.NewSpecialEvent(key.KeySpace, key.ModCtrl), true
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return key.NewSpecialEvent(key.KeySpace, mods), true
		}
		return key.NewRuneEvent(ev.Rune(), mods), true
	}
	return key.Event{}, false
}

var (
	styleDefault = tcell.StyleDefault
	styleCurrent = tcell.StyleDefault.Bold(true)
	styleMarker  = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleStatus  = tcell.StyleDefault.Reverse(true)
)

func (s *session) draw() {
	s.screen.Clear()
	width, height := s.screen.Size()
	cur := s.ed.Current()
	tab := strings.Repeat(" ", s.tabWidth())

	y := 0
	for _, b := range s.ed.Blocks() {
		if y >= height-1 {
			break
		}
		marker := typeMarker(b.Type())
		style := styleDefault
		if b == cur {
			style = styleCurrent
		}
		drawText(s.screen, 0, y, styleMarker, marker)
		x := runewidth.StringWidth(marker)

		lines := strings.Split(b.Content, "\n")
		for i, line := range lines {
			if y >= height-1 {
				break
			}
			if i > 0 {
				x = runewidth.StringWidth(marker)
			}
			drawText(s.screen, x, y, style, strings.ReplaceAll(line, "\t", tab))
			y++
		}

		if b == cur {
			left, _ := block.SplitContent(b.Content, s.caret)
			caretLines := strings.Split(left, "\n")
			last := strings.ReplaceAll(caretLines[len(caretLines)-1], "\t", tab)
			cx := runewidth.StringWidth(marker) + runewidth.StringWidth(last)
			cy := y - len(lines) + len(caretLines) - 1
			s.screen.ShowCursor(cx, cy)
		}
	}

	status := s.statusLine()
	if s.dirty {
		status = "* " + status
	}
	drawText(s.screen, 0, height-1, styleStatus, runewidth.FillRight(status, width))
	s.screen.Show()
}

// typeMarker is the gutter hint shown before each block.
func typeMarker(t block.Type) string {
	switch t {
	case block.H1:
		return "# "
	case block.H2:
		return "## "
	case block.H3:
		return "### "
	case block.Code:
		return "| "
	case block.TaskList:
		return "[ ] "
	case block.UnorderedList:
		return "- "
	case block.OrderedList:
		return "1. "
	case block.Table:
		return "# | "
	}
	return "  "
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}
