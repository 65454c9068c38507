package circuitcode

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/katalvlaran/circuitcode/aesthetic"
	"github.com/katalvlaran/circuitcode/bitmapper"
	"github.com/katalvlaran/circuitcode/decoder"
	"github.com/katalvlaran/circuitcode/gridmodel"
	"github.com/katalvlaran/circuitcode/randfill"
	"github.com/katalvlaran/circuitcode/render"
	"github.com/katalvlaran/circuitcode/textcodec"
)

// Variants is the number of documents produced per message.
const Variants = randfill.Variants

// ErrVariantRange indicates a variant index outside 0..Variants-1.
var ErrVariantRange = errors.New("circuitcode: variant out of range")

// Message is a decoded message; see decoder.Message.
type Message = decoder.Message

// Encode renders text into its three variant documents. All panels appear in
// every document, stacked in order.
//
// Errors: *textcodec.InvalidCharacterError (matches textcodec.ErrInvalidCharacter)
// before any rendering; context errors when Ctx is cancelled.
func Encode(text string, opts ...Option) ([Variants][]byte, error) {
	var out [Variants][]byte
	o := applyOptions(opts)
	panels, err := textcodec.Encode(text)
	if err != nil {
		return out, err
	}
	o.Logger.Debug("circuitcode: encode", "chars", len([]rune(text)), "panels", len(panels))

	var errs [Variants]error
	if o.Sequential {
		for v := range out {
			out[v], errs[v] = variant(o, panels, v)
		}
	} else {
		var wg sync.WaitGroup
		for v := range out {
			wg.Add(1)
			go func(v int) {
				defer wg.Done()
				out[v], errs[v] = variant(o, panels, v)
			}(v)
		}
		wg.Wait()
	}
	if err := errors.Join(errs[:]...); err != nil {
		return [Variants][]byte{}, err
	}
	return out, nil
}

// EncodeVariant renders only document v of text.
func EncodeVariant(text string, v int, opts ...Option) ([]byte, error) {
	if v < 0 || v >= Variants {
		return nil, fmt.Errorf("%w: %d", ErrVariantRange, v)
	}
	o := applyOptions(opts)
	panels, err := textcodec.Encode(text)
	if err != nil {
		return nil, err
	}
	return variant(o, panels, v)
}

// variant builds and renders all panels for one variant.
func variant(o Options, panels []textcodec.Panel, v int) ([]byte, error) {
	grids := make([]gridmodel.Grid, len(panels))
	for i, p := range panels {
		if err := o.Ctx.Err(); err != nil {
			return nil, fmt.Errorf("circuitcode: variant %d: %w", v, err)
		}
		grids[i] = decorate(o, p, v)
	}
	doc, err := render.Bytes(grids)
	if err != nil {
		return nil, fmt.Errorf("circuitcode: variant %d: %w", v, err)
	}
	return doc, nil
}

// decorate places the payload of p and adds the decorations of variant v.
func decorate(o Options, p textcodec.Panel, v int) gridmodel.Grid {
	g, rep := aesthetic.Solve(bitmapper.Apply(p.Bits), p.Seed, v)
	g, st := randfill.Fill(g, p.Seed, v)
	if o.Logger.Enabled(o.Ctx, slog.LevelDebug) {
		h, vv, d := g.Counts()
		chains := render.ChainStats(&g)
		o.Logger.Debug("circuitcode: panel",
			"panel", p.Index,
			"variant", v,
			"h", h, "v", vv, "diagonals", d,
			"arcs", len(rep.Arcs), "fills", len(rep.Fills),
			"visual", st.Visual, "needed", st.Needed,
			"selected", st.Selected, "noise", st.Added,
			"skipped_triangle", st.SkippedTriangle, "skipped_degree", st.SkippedDegree,
			"chains", chains.Chains, "longest_chain", chains.Longest,
		)
	}
	return g
}

// Decode recovers text from the three variant documents of a message, in any
// order. Panels that fail validation are logged and reported on the Message;
// their text is omitted from Message.Text.
func Decode(docs ...[]byte) (*Message, error) {
	msg, err := decoder.Decode(docs...)
	if err != nil {
		return nil, err
	}
	for _, p := range msg.Panels {
		if p.Err != nil {
			Logger().Warn("circuitcode: panel rejected", "panel", p.Index, "err", p.Err)
		}
	}
	return msg, nil
}
