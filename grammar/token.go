package grammar

import (
	"fmt"
	"strconv"
	"strings"

	"rhythmdeck/model"
)

// Token grammar, one bar per line:
//
//	c4 c8. c16 r4 c4
//
// "c" is a note, "r" a rest, the number the LilyPond denominator, a
// trailing "." a dot. This is the exchange format with the renderer and
// with the user-editable rhythm bank.

// ParseToken parses one note/rest token at the given resolution.
func ParseToken(tok string, ticksPerMeasure int) (model.Event, error) {
	var evt model.Event

	if len(tok) < 2 {
		return evt, &UnknownDurationError{Token: tok}
	}
	switch tok[0] {
	case 'c':
		evt.Kind = model.Note
	case 'r':
		evt.Kind = model.Rest
	default:
		return evt, &UnknownDurationError{Token: tok}
	}

	rest := tok[1:]
	if strings.HasSuffix(rest, ".") {
		evt.Dotted = true
		rest = rest[:len(rest)-1]
	}

	denom, err := strconv.Atoi(rest)
	if err != nil {
		return evt, &UnknownDurationError{Token: tok}
	}
	ticks, err := DenominatorTicks(denom, ticksPerMeasure)
	if err != nil {
		return evt, &UnknownDurationError{Token: tok}
	}
	if evt.Dotted {
		ticks, err = Dotted(ticks)
		if err != nil {
			return evt, err
		}
	}
	evt.Ticks = ticks
	return evt, nil
}

// ParseLine parses one space-separated bar line.
func ParseLine(line string, ticksPerMeasure int) (model.Bar, error) {
	var bar model.Bar
	for _, tok := range strings.Fields(line) {
		evt, err := ParseToken(tok, ticksPerMeasure)
		if err != nil {
			return model.Bar{}, err
		}
		bar.Events = append(bar.Events, evt)
	}
	return bar, nil
}

// SerializeEvent renders one event back to its token. Fails when the
// event's tick count has no token at this resolution.
func SerializeEvent(evt model.Event, ticksPerMeasure int) (string, error) {
	base := evt.Ticks
	if evt.Dotted {
		if base%3 != 0 {
			return "", &InvalidDurationError{Ticks: evt.Ticks, Reason: "not a dotted tick count"}
		}
		base = base * 2 / 3
	}
	if base <= 0 || ticksPerMeasure%base != 0 {
		return "", &InvalidDurationError{Ticks: evt.Ticks, Reason: fmt.Sprintf("no token at resolution %d", ticksPerMeasure)}
	}
	denom := ticksPerMeasure / base

	var sb strings.Builder
	if evt.Kind == model.Rest {
		sb.WriteByte('r')
	} else {
		sb.WriteByte('c')
	}
	sb.WriteString(strconv.Itoa(denom))
	if evt.Dotted {
		sb.WriteByte('.')
	}
	return sb.String(), nil
}

// Serialize renders a bar as one bank line.
func Serialize(bar model.Bar, ticksPerMeasure int) (string, error) {
	toks := make([]string, 0, len(bar.Events))
	for _, evt := range bar.Events {
		tok, err := SerializeEvent(evt, ticksPerMeasure)
		if err != nil {
			return "", err
		}
		toks = append(toks, tok)
	}
	return strings.Join(toks, " "), nil
}
