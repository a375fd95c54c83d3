package animations

// Player owns a set of keyed animations, plays one at a time and reports
// completions to registered callbacks.
type Player struct {
	anims     map[string]*Animation
	current   string
	callbacks map[string][]func()
}

func NewPlayer() *Player {
	return &Player{
		anims:     make(map[string]*Animation),
		callbacks: make(map[string][]func()),
	}
}

func (p *Player) Add(key string, a *Animation) {
	p.anims[key] = a
}

// Play starts key from its first frame, restarting it if it is already
// playing. It returns false for an unknown key and leaves the current
// animation alone.
func (p *Player) Play(key string) bool {
	a, ok := p.anims[key]
	if !ok {
		return false
	}
	p.current = key
	a.Restart()
	return true
}

// OnComplete registers fn to run each time a playthrough of key finishes.
// Repeating animations never complete.
func (p *Player) OnComplete(key string, fn func()) {
	p.callbacks[key] = append(p.callbacks[key], fn)
}

// Update advances the current animation by one tick and fires completion
// callbacks at most once per playthrough.
func (p *Player) Update() {
	a, ok := p.anims[p.current]
	if !ok {
		return
	}
	key := p.current
	if a.Update() {
		for _, fn := range p.callbacks[key] {
			fn()
		}
	}
}

// Current returns the playing key and its animation, or nil if nothing has
// been played yet.
func (p *Player) Current() (string, *Animation) {
	return p.current, p.anims[p.current]
}

func (p *Player) Frame() int {
	if a, ok := p.anims[p.current]; ok {
		return a.Frame()
	}
	return 0
}
