package mahc

// Riichi is the riichi declaration state of the winner.
type Riichi int

const (
	NoRiichi Riichi = iota
	SingleRiichi
	DoubleRiichi
)

// String returns the declaration name.
func (r Riichi) String() string {
	switch r {
	case SingleRiichi:
		return "Riichi"
	case DoubleRiichi:
		return "DoubleRiichi"
	}
	return "None"
}

// Declared reports whether any riichi was declared.
func (r Riichi) Declared() bool {
	return r != NoRiichi
}

// RiichiFromFlags folds the two boolean riichi switches of the command line
// into a single declaration.
func RiichiFromFlags(riichi, double bool) (Riichi, error) {
	switch {
	case riichi && double:
		return NoRiichi, ErrDuplicateRiichi
	case double:
		return DoubleRiichi, nil
	case riichi:
		return SingleRiichi, nil
	}
	return NoRiichi, nil
}

// RoundContext holds the situational facts around a win that cannot be read
// from the tiles.
type RoundContext struct {
	tsumo   bool
	riichi  Riichi
	ippatsu bool
	rinshan bool
	chankan bool
	haitei  bool
	tenhou  bool
}

// NewRoundContext builds a context from every flag at once.
func NewRoundContext(tsumo bool, riichi Riichi, ippatsu, rinshan, chankan, haitei, tenhou bool) RoundContext {
	return RoundContext{
		tsumo:   tsumo,
		riichi:  riichi,
		ippatsu: ippatsu,
		rinshan: rinshan,
		chankan: chankan,
		haitei:  haitei,
		tenhou:  tenhou,
	}
}

func (c RoundContext) Tsumo() bool    { return c.tsumo }
func (c RoundContext) Riichi() Riichi { return c.riichi }
func (c RoundContext) Ippatsu() bool  { return c.ippatsu }
func (c RoundContext) Rinshan() bool  { return c.rinshan }
func (c RoundContext) Chankan() bool  { return c.chankan }
func (c RoundContext) Haitei() bool   { return c.haitei }
func (c RoundContext) Tenhou() bool   { return c.tenhou }

// Validate rejects flag combinations that cannot happen in a real round.
func (c RoundContext) Validate() error {
	switch {
	case c.tsumo && c.chankan:
		return ErrChankanTsumo
	case c.rinshan && !c.tsumo:
		return ErrRinshanWithoutTsumo
	case c.rinshan && c.ippatsu:
		return ErrRinshanIppatsu
	case c.ippatsu && !c.riichi.Declared():
		return ErrIppatsuWithoutRiichi
	case c.riichi == DoubleRiichi && c.haitei && c.ippatsu:
		return ErrDoubleRiichiHaiteiIppatsu
	case c.riichi == DoubleRiichi && c.haitei && c.chankan:
		return ErrDoubleRiichiHaiteiChankan
	case c.tenhou && !c.tsumo:
		return ErrTenhouWithoutTsumo
	}
	return nil
}

// ContextFlags are the situational switches as a caller such as the command
// line collects them, with riichi and double riichi as separate flags.
type ContextFlags struct {
	Tsumo        bool
	Riichi       bool
	DoubleRiichi bool
	Ippatsu      bool
	Haitei       bool
	Rinshan      bool
	Chankan      bool
	Tenhou       bool
}

// Context folds the flags into a validated RoundContext. Contradictions are
// reported in a fixed order, with the duplicate riichi check after the
// tsumo, chankan and rinshan checks.
func (f ContextFlags) Context() (RoundContext, error) {
	switch {
	case f.Tsumo && f.Chankan:
		return RoundContext{}, ErrChankanTsumo
	case f.Rinshan && !f.Tsumo:
		return RoundContext{}, ErrRinshanWithoutTsumo
	case f.Rinshan && f.Ippatsu:
		return RoundContext{}, ErrRinshanIppatsu
	}
	riichi, err := RiichiFromFlags(f.Riichi, f.DoubleRiichi)
	if err != nil {
		return RoundContext{}, err
	}
	ctx := NewRoundContext(f.Tsumo, riichi, f.Ippatsu, f.Rinshan, f.Chankan, f.Haitei, f.Tenhou)
	if err := ctx.Validate(); err != nil {
		return RoundContext{}, err
	}
	return ctx, nil
}

// RoundContextBuilder assembles a RoundContext one flag at a time.
type RoundContextBuilder struct {
	ctx RoundContext
}

// NewRoundContextBuilder starts from a ron with no special conditions.
func NewRoundContextBuilder() *RoundContextBuilder {
	return &RoundContextBuilder{}
}

func (b *RoundContextBuilder) Tsumo(v bool) *RoundContextBuilder {
	b.ctx.tsumo = v
	return b
}

func (b *RoundContextBuilder) Riichi(r Riichi) *RoundContextBuilder {
	b.ctx.riichi = r
	return b
}

func (b *RoundContextBuilder) Ippatsu(v bool) *RoundContextBuilder {
	b.ctx.ippatsu = v
	return b
}

func (b *RoundContextBuilder) Rinshan(v bool) *RoundContextBuilder {
	b.ctx.rinshan = v
	return b
}

func (b *RoundContextBuilder) Chankan(v bool) *RoundContextBuilder {
	b.ctx.chankan = v
	return b
}

func (b *RoundContextBuilder) Haitei(v bool) *RoundContextBuilder {
	b.ctx.haitei = v
	return b
}

func (b *RoundContextBuilder) Tenhou(v bool) *RoundContextBuilder {
	b.ctx.tenhou = v
	return b
}

// Build returns the context. It does not validate; callers run Validate.
func (b *RoundContextBuilder) Build() RoundContext {
	return b.ctx
}
