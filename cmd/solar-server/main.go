package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/jgoizueta/solar/internal/log"
	"github.com/jgoizueta/solar/pkg/solar"
	"go.uber.org/zap"
)

// server exposes the solar ephemeris over a small JSON API.
type server struct {
	Server http.Server
	logger *zap.SugaredLogger
}

func newServer(addr string, logger *zap.SugaredLogger) *server {
	s := &server{logger: logger}

	router := mux.NewRouter()
	router.HandleFunc("/position", s.getPosition)
	router.HandleFunc("/passages", s.getPassages)
	router.HandleFunc("/daynight", s.getDayOrNight)
	router.HandleFunc("/irradiance", s.getIrradiance)

	s.Server.Addr = addr
	s.Server.Handler = router
	return s
}

type positionResponse struct {
	Time           string  `json:"time"`
	Longitude      float64 `json:"longitude"`
	Latitude       float64 `json:"latitude"`
	Elevation      float64 `json:"elevation"`
	Azimuth        float64 `json:"azimuth"`
	Declination    float64 `json:"declination"`
	RightAscension float64 `json:"right_ascension"`
}

func (s *server) getPosition(w http.ResponseWriter, req *http.Request) {
	lon, lat, err := coordinates(req)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	t, err := instant(req)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	pos := solar.Position(t, lon, lat)
	eq := solar.Equatorial(t)
	s.writeJSON(w, positionResponse{
		Time:           t.Format(time.RFC3339),
		Longitude:      lon,
		Latitude:       lat,
		Elevation:      pos.Elevation,
		Azimuth:        pos.Azimuth,
		Declination:    eq.Declination.Deg(),
		RightAscension: eq.RightAscension.Deg(),
	})
}

type passagesResponse struct {
	Date        string `json:"date"`
	Rise        string `json:"rise,omitempty"`
	Transit     string `json:"transit"`
	Set         string `json:"set,omitempty"`
	PolarNight  bool   `json:"polar_night,omitempty"`
	MidnightSun bool   `json:"midnight_sun,omitempty"`
}

func (s *server) getPassages(w http.ResponseWriter, req *http.Request) {
	lon, lat, err := coordinates(req)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	date := solar.DateOf(time.Now().UTC())
	if d := req.URL.Query().Get("date"); d != "" {
		parsed, err := time.Parse("2006-01-02", d)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", d))
			return
		}
		date = solar.DateOf(parsed.UTC())
	}

	var opts []solar.Option
	if z := req.URL.Query().Get("zenith"); z != "" {
		alt, err := parseAltitude(z)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, err)
			return
		}
		opts = append(opts, solar.WithZenith(alt))
	}

	p, err := solar.Passages(date, lon, lat, opts...)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	resp := passagesResponse{
		Date:    date.Start().Format("2006-01-02"),
		Transit: p.Transit.Format(time.RFC3339),
	}
	switch {
	case p.NeverRises():
		resp.PolarNight = true
	case p.NeverSets():
		resp.MidnightSun = true
	default:
		resp.Rise = p.Rise.Format(time.RFC3339)
		resp.Set = p.Set.Format(time.RFC3339)
	}
	s.writeJSON(w, resp)
}

type dayNightResponse struct {
	Time      string `json:"time"`
	Situation string `json:"situation"`
}

func (s *server) getDayOrNight(w http.ResponseWriter, req *http.Request) {
	lon, lat, err := coordinates(req)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	t, err := instant(req)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	var opts []solar.Option
	if req.URL.Query().Get("detailed") == "true" {
		opts = append(opts, solar.Detailed())
	}
	situation, err := solar.DayOrNight(t, lon, lat, opts...)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	s.writeJSON(w, dayNightResponse{
		Time:      t.Format(time.RFC3339),
		Situation: string(situation),
	})
}

type irradianceResponse struct {
	Time       string  `json:"time"`
	Irradiance float64 `json:"irradiance"`
}

func (s *server) getIrradiance(w http.ResponseWriter, req *http.Request) {
	lon, lat, err := coordinates(req)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	t, err := instant(req)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	siteAlt := 0.0
	if a := req.URL.Query().Get("altitude"); a != "" {
		if siteAlt, err = strconv.ParseFloat(a, 64); err != nil {
			s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid altitude %q", a))
			return
		}
	}
	s.writeJSON(w, irradianceResponse{
		Time:       t.Format(time.RFC3339),
		Irradiance: solar.GlobalIrradiance(t, lon, lat, siteAlt),
	})
}

// coordinates pulls the required lat/lon query parameters.
func coordinates(req *http.Request) (lon, lat float64, err error) {
	q := req.URL.Query()
	lat, err = strconv.ParseFloat(q.Get("lat"), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("missing or invalid lat parameter")
	}
	lon, err = strconv.ParseFloat(q.Get("lon"), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("missing or invalid lon parameter")
	}
	return lon, lat, nil
}

// instant pulls the optional time query parameter, defaulting to now.
func instant(req *http.Request) (time.Time, error) {
	v := req.URL.Query().Get("time")
	if v == "" {
		return time.Now().UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: expected RFC3339", v)
	}
	return t.UTC(), nil
}

func parseAltitude(s string) (solar.Altitude, error) {
	name := solar.AltitudeName(s)
	if _, ok := solar.Altitudes[name]; ok {
		return solar.Named(name), nil
	}
	deg, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return solar.Altitude{}, fmt.Errorf("invalid zenith %q: expected a name or degrees", s)
	}
	return solar.Degrees(deg), nil
}

func (s *server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Errorf("error encoding response: %v", err)
	}
}

func (s *server) writeError(w http.ResponseWriter, code int, err error) {
	s.logger.Warnf("request failed: %v", err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

func main() {
	var (
		listenAddr string
		port       int
		debug      bool
	)
	flag.StringVar(&listenAddr, "listen-addr", "0.0.0.0", "address to listen on")
	flag.IntVar(&port, "port", 8085, "port to listen on")
	flag.BoolVar(&debug, "debug", false, "enable debug logging")
	flag.Parse()

	if err := log.Init(debug); err != nil {
		fmt.Fprintf(os.Stderr, "could not initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	s := newServer(fmt.Sprintf("%v:%v", listenAddr, port), log.GetSugaredLogger())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		log.Info("Shutting down the solar server...")
		s.Server.Shutdown(context.Background())
	}()

	log.Infof("Starting solar server on %v", s.Server.Addr)
	if err := s.Server.ListenAndServe(); err != http.ErrServerClosed {
		log.Errorf("solar server error: %v", err)
		os.Exit(1)
	}
}
