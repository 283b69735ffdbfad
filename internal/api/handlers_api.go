package api

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/lox/pogoda/internal/entity"
	"github.com/lox/pogoda/internal/metrics"
	"github.com/lox/pogoda/internal/pogoda"
	"github.com/lox/pogoda/internal/units"
)

const maxPayloadBytes = 1 << 20

type mappedResponse struct {
	Code    string `json:"code"`
	IsDay   bool   `json:"is_day"`
	Value   string `json:"value"`
	Unknown bool   `json:"unknown"`
}

type windDirectionResponse struct {
	Angle     float64 `json:"angle"`
	Direction string  `json:"direction"`
}

type convertResponse struct {
	Kind  string   `json:"kind"`
	From  string   `json:"from"`
	To    string   `json:"to"`
	Value *float64 `json:"value"`
}

type dayPartResponse struct {
	Time               string `json:"time"`
	DayPart            string `json:"day_part"`
	RepresentativeHour int    `json:"representative_hour"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	health := map[string]string{"status": "ok"}
	if s.store != nil {
		if _, err := s.store.MigrationVersion(); err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"status": "error", "error": err.Error()})
			return
		}
	}
	writeJSON(w, http.StatusOK, health)
}

func (s *Server) handleCondition(w http.ResponseWriter, r *http.Request) {
	s.handleMapped(w, r, pogoda.WeatherStates)
}

func (s *Server) handleIcon(w http.ResponseWriter, r *http.Request) {
	s.handleMapped(w, r, pogoda.ConditionIcons)
}

func (s *Server) handleMapped(w http.ResponseWriter, r *http.Request, table *pogoda.Table) {
	q := r.URL.Query()
	code := q.Get("code")
	if code == "" {
		writeError(w, http.StatusBadRequest, errors.New("code is required"))
		return
	}
	isDay, err := parseDaytime(q.Get("daytime"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	_, known := table.Lookup(code)
	writeJSON(w, http.StatusOK, mappedResponse{
		Code:    code,
		IsDay:   isDay,
		Value:   pogoda.MapState(code, isDay, table),
		Unknown: !known,
	})
}

// parseDaytime accepts the provider's d/n flags as well as booleans.
// Empty means day.
func parseDaytime(v string) (bool, error) {
	switch v {
	case "", "d", "day":
		return true, nil
	case "n", "night":
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid daytime %q", v)
	}
	return b, nil
}

func (s *Server) handleWindDirection(w http.ResponseWriter, r *http.Request) {
	angle, err := strconv.ParseFloat(r.URL.Query().Get("angle"), 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid angle %q", r.URL.Query().Get("angle")))
		return
	}
	dir, err := pogoda.WindDirection(angle)
	if err != nil {
		metrics.InvalidInputs.WithLabelValues("wind_direction").Inc()
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, windDirectionResponse{Angle: angle, Direction: dir})
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	kind := q.Get("kind")

	var conv pogoda.Converter
	switch kind {
	case "temperature":
		conv = units.ConvertTemperature
	case "wind_speed":
		conv = units.ConvertWindSpeed
	default:
		writeError(w, http.StatusBadRequest, fmt.Errorf("unknown kind %q", kind))
		return
	}

	var val *float64
	if raw := q.Get("value"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid value %q", raw))
			return
		}
		val = &v
	}

	from, to := q.Get("from"), q.Get("to")
	out, err := pogoda.ConvertUnitValue(conv, val, from, to)
	if err != nil {
		metrics.InvalidInputs.WithLabelValues("convert").Inc()
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, convertResponse{Kind: kind, From: from, To: to, Value: out})
}

func (s *Server) handleDayPart(w http.ResponseWriter, r *http.Request) {
	now := s.builder.Localize(s.clock.Now())
	part := pogoda.DayPartAt(now)
	hour, _ := pogoda.RepresentativeHour(part)
	writeJSON(w, http.StatusOK, dayPartResponse{
		Time:               now.Format(time.RFC3339),
		DayPart:            string(part),
		RepresentativeHour: hour,
	})
}

func (s *Server) handleBuildState(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxPayloadBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("read body: %w", err))
		return
	}

	fact, forecast, err := entity.ParseFact(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	state, err := s.builder.Build(fact, forecast)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	if s.store != nil {
		if err := s.store.InsertWeatherState(state); err != nil {
			log.Printf("api: store state: %v", err)
		}
	}
	writeJSON(w, http.StatusOK, state)
}

func (s *Server) handleLatestState(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusNotFound, errors.New("no state store configured"))
		return
	}
	state, err := s.store.GetLatestWeatherState()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if state == nil {
		writeError(w, http.StatusNotFound, errors.New("no state recorded yet"))
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (s *Server) handleUnknownCodes(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeJSON(w, http.StatusOK, []any{})
		return
	}
	codes, err := s.store.UnknownCodes()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if codes == nil {
		writeJSON(w, http.StatusOK, []any{})
		return
	}
	writeJSON(w, http.StatusOK, codes)
}
