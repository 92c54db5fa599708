package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"rhythmdeck/bank"
	"rhythmdeck/constants"
	"rhythmdeck/gen"
	"rhythmdeck/grammar"
	"rhythmdeck/model"
	"rhythmdeck/validate"
)

var (
	serveAddr  string
	serveTicks int

	servedMu   sync.RWMutex
	servedBank []bank.Line
)

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	serveCmd.Flags().IntVar(&serveTicks, "ticks", grammar.DefaultTicksPerMeasure, "ticks per measure")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the generate/validate API",
	Long: `Serves a small JSON API over the rhythm engine: POST /generate for new
material, POST /validate for linting, GET /bank for the loaded bank.
The bank file is watched and reloaded on change.`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

// LoadServeBank loads (or reloads) the bank file into the served state.
func LoadServeBank() error {
	lines, err := bank.Load(constants.GetBankPath(), serveTicks)
	if err != nil {
		return err
	}
	servedMu.Lock()
	servedBank = lines
	servedMu.Unlock()
	return nil
}

func writeError(w http.ResponseWriter, status int, format string, args ...any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: fmt.Sprintf(format, args...)})
}

func HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var input model.GenerateRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "could not parse request body: %v", err)
		return
	}
	if input.Count <= 0 || input.Count > 500 {
		writeError(w, http.StatusBadRequest, "count must be in 1..500")
		return
	}

	cfg, err := gen.Profile(input.Profile, serveTicks)
	if err != nil {
		writeError(w, http.StatusBadRequest, "%v", err)
		return
	}
	bars, err := gen.Generate(cfg, input.Count, input.Seed)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "%v", err)
		return
	}

	res := model.GenerateResponse{Profile: input.Profile, Seed: input.Seed}
	for _, bar := range bars {
		line, err := grammar.Serialize(bar, cfg.TicksPerMeasure)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "%v", err)
			return
		}
		res.Rhythms = append(res.Rhythms, line)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func HandleValidate(w http.ResponseWriter, r *http.Request) {
	var input model.ValidateRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "could not parse request body: %v", err)
		return
	}

	cfg, err := gen.Profile(input.Profile, serveTicks)
	if err != nil {
		writeError(w, http.StatusBadRequest, "%v", err)
		return
	}

	var res model.ValidateResponse
	for i, text := range input.Lines {
		lineNo := i + 1
		bar, err := grammar.ParseLine(text, cfg.TicksPerMeasure)
		if err != nil {
			res.Results = append(res.Results, model.LineResult{
				Line: lineNo, OK: false, Reason: err.Error(), Index: -1,
			})
			continue
		}
		v, err := validate.Validate(bar.Events, cfg)
		if err != nil {
			writeError(w, http.StatusBadRequest, "line %d: %v", lineNo, err)
			return
		}
		res.Results = append(res.Results, model.LineResult{
			Line: lineNo, OK: v.OK, Reason: v.Reason, Index: v.Index,
		})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func HandleBank(w http.ResponseWriter, r *http.Request) {
	servedMu.RLock()
	defer servedMu.RUnlock()

	rhythms := make([]string, 0, len(servedBank))
	for _, ln := range servedBank {
		rhythms = append(rhythms, ln.Text)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"bank":    constants.GetBankPath(),
		"count":   len(rhythms),
		"rhythms": rhythms,
	})
}

// watchBank polls the bank file's mtime and reloads through a debouncer
// so editor save bursts trigger one reload.
func watchBank() {
	debounced := debounce.New(500 * time.Millisecond)
	var lastMod time.Time

	ticker := time.NewTicker(time.Second)
	for range ticker.C {
		info, err := os.Stat(constants.GetBankPath())
		if err != nil {
			continue
		}
		if !info.ModTime().Equal(lastMod) {
			lastMod = info.ModTime()
			debounced(func() {
				if err := LoadServeBank(); err != nil {
					fmt.Printf("Bank reload failed: %v\n", err)
					return
				}
				fmt.Printf("Reloaded bank: %v\n", constants.GetBankPath())
			})
		}
	}
}

func serve() {
	if err := LoadServeBank(); err != nil {
		panic("Could not load bank: " + err.Error())
	}
	go watchBank()

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/generate", HandleGenerate).Methods("POST")
	router.HandleFunc("/validate", HandleValidate).Methods("POST")
	router.HandleFunc("/bank", HandleBank).Methods("GET")

	handler := cors.Default().Handler(router)
	fmt.Printf("Serving on %v\n", serveAddr)
	log.Fatal(http.ListenAndServe(serveAddr, handler))
}
