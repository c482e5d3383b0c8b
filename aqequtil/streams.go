/*
Copyright © 2026 the aqeq authors.
This file is part of aqeq.

aqeq is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

aqeq is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with aqeq.  If not, see <http://www.gnu.org/licenses/>.
*/

package aqequtil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/wwtp/aqeq"
)

// WasteStream is a stream read from a stream file. It implements
// aqeq.Stream.
type WasteStream struct {
	ID string `toml:"ID" validate:"required"`

	// PhaseTag is "l", "g" or "s". Streams with no phase are liquid.
	PhaseTag string `toml:"Phase" validate:"omitempty,oneof=l g s"`

	// MeasuredPH is an optional observed pH used by the charge balance
	// check.
	MeasuredPH *float64 `toml:"MeasuredPH" validate:"omitempty,gte=0,lte=14"`

	// Concentrations are keyed by component ID (e.g. "S_IC").
	Concentrations map[string]float64 `toml:"Concentrations"`

	phase aqeq.Phase
	conc  map[aqeq.Component]float64

	// PH and Alkalinity [meq/L] are set by annotation.
	PH, Alkalinity float64
}

// streamFile is the layout of a stream file.
type streamFile struct {
	Stream []WasteStream `validate:"required,unique=ID,dive"`
}

var (
	validate *validator.Validate
	trans    ut.Translator
)

func init() {
	enLoc := en.New()
	trans, _ = ut.New(enLoc, enLoc).GetTranslator("en")

	validate = validator.New(validator.WithRequiredStructEnabled())

	// Report fields by the names used in stream files.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if tag := fld.Tag.Get("toml"); tag != "" && tag != "-" {
			return tag
		}
		return fld.Name
	})
	_ = en_translations.RegisterDefaultTranslations(validate, trans)
}

// validationError turns validation failures into a single readable
// error.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("aqequtil: invalid streams: %v", err)
	}
	msgs := make([]string, len(verrs))
	for i, e := range verrs {
		msgs[i] = e.Namespace() + ": " + e.Translate(trans)
	}
	return fmt.Errorf("aqequtil: invalid streams: %s", strings.Join(msgs, "; "))
}

// Phase implements aqeq.Stream.
func (s *WasteStream) Phase() aqeq.Phase { return s.phase }

// Concentration implements aqeq.Stream.
func (s *WasteStream) Concentration(c aqeq.Component) (float64, bool) {
	v, ok := s.conc[c]
	return v, ok
}

// SetPH implements aqeq.Stream.
func (s *WasteStream) SetPH(v float64) { s.PH = v }

// SetAlkalinity implements aqeq.Stream.
func (s *WasteStream) SetAlkalinity(v float64) { s.Alkalinity = v }

// NewWasteStream returns a liquid stream with the given concentrations.
func NewWasteStream(id string, conc map[string]float64) (*WasteStream, error) {
	s := &WasteStream{ID: id, Concentrations: conc}
	if err := s.parse(); err != nil {
		return nil, err
	}
	return s, nil
}

// parse fills in the phase and component concentrations from the
// decoded fields.
func (s *WasteStream) parse() error {
	s.phase = aqeq.Liquid
	if s.PhaseTag != "" {
		p, err := aqeq.ParsePhase(s.PhaseTag)
		if err != nil {
			return fmt.Errorf("aqequtil: stream %s: %v", s.ID, err)
		}
		s.phase = p
	}
	s.conc = make(map[aqeq.Component]float64, len(s.Concentrations))
	for id, v := range s.Concentrations {
		c, err := aqeq.ParseComponent(id)
		if err != nil {
			return fmt.Errorf("aqequtil: stream %s: %v", s.ID, err)
		}
		s.conc[c] = v
	}
	return nil
}

// ReadStreams reads and validates streams in TOML format.
func ReadStreams(r io.Reader) ([]*WasteStream, error) {
	var f streamFile
	if _, err := toml.DecodeReader(r, &f); err != nil {
		return nil, fmt.Errorf("aqequtil: problem decoding streams: %v", err)
	}
	if err := validate.Struct(f); err != nil {
		return nil, validationError(err)
	}
	streams := make([]*WasteStream, len(f.Stream))
	for i := range f.Stream {
		s := &f.Stream[i]
		if err := s.parse(); err != nil {
			return nil, err
		}
		streams[i] = s
	}
	return streams, nil
}

// ReadStreamFile reads streams from the TOML file at path, which can
// include environment variables.
func ReadStreamFile(path string) ([]*WasteStream, error) {
	if path == "" {
		return nil, fmt.Errorf("aqequtil: you need to specify a stream file (for example: --Streams=streams.toml)")
	}
	f, err := os.Open(os.ExpandEnv(path))
	if err != nil {
		return nil, fmt.Errorf("aqequtil: opening stream file: %v", err)
	}
	defer f.Close()
	return ReadStreams(f)
}
