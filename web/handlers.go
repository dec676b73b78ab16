package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mww/dynasty_tracker/controller"
	"github.com/mww/dynasty_tracker/db"
	"github.com/mww/dynasty_tracker/model"
	"github.com/rs/zerolog/log"
	"github.com/unrolled/render"
)

// Schedule uploads are limited to 5 MB.
const maxUploadSize = 5 << 20

func rootHandler(_ controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.Text(w, http.StatusOK, "dynasty tracker")
	}
}

func listTeamsHandler(_ controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conf := r.URL.Query().Get("conf")
		if conf == "" {
			render.JSON(w, http.StatusOK, model.Teams())
			return
		}

		c := model.ParseConference(conf)
		if c == model.CONF_UNKNOWN {
			renderError(w, render, http.StatusBadRequest, fmt.Sprintf("unknown conference: '%s'", conf))
			return
		}
		render.JSON(w, http.StatusOK, model.ConferenceTeams(c))
	}
}

func getTeamHandler(_ controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		team := model.ParseTeam(chi.URLParam(r, "team"))
		if team == nil {
			renderError(w, render, http.StatusNotFound, "team not found")
			return
		}
		render.JSON(w, http.StatusOK, team)
	}
}

func listBowlsHandler(_ controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, http.StatusOK, model.BowlNames())
	}
}

func listDynastiesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := ctrl.ListDynasties(r.Context())
		if err != nil {
			renderErr(w, render, err)
			return
		}
		if res == nil {
			res = []model.Dynasty{}
		}
		render.JSON(w, http.StatusOK, res)
	}
}

type createDynastyRequest struct {
	Name      string `json:"name"`
	School    string `json:"school"`
	Coach     string `json:"coach"`
	StartYear int    `json:"startYear"`
}

func createDynastyHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createDynastyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			renderError(w, render, http.StatusBadRequest, fmt.Sprintf("error parsing request: %v", err))
			return
		}

		d, err := ctrl.CreateDynasty(r.Context(), req.Name, req.School, req.Coach, req.StartYear)
		if err != nil {
			renderErr(w, render, err)
			return
		}
		render.JSON(w, http.StatusCreated, d)
	}
}

func getDynastyHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := ctrl.GetDynasty(r.Context(), chi.URLParam(r, "dynastyID"))
		if err != nil {
			renderErr(w, render, err)
			return
		}
		render.JSON(w, http.StatusOK, d)
	}
}

func deleteDynastyHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.DeleteDynasty(r.Context(), chi.URLParam(r, "dynastyID")); err != nil {
			renderErr(w, render, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func advanceSeasonHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := ctrl.AdvanceSeason(r.Context(), chi.URLParam(r, "dynastyID"))
		if err != nil {
			renderErr(w, render, err)
			return
		}
		render.JSON(w, http.StatusOK, d)
	}
}

func addAwardHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var a model.Award
		if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
			renderError(w, render, http.StatusBadRequest, fmt.Sprintf("error parsing award: %v", err))
			return
		}

		d, err := ctrl.AddAward(r.Context(), chi.URLParam(r, "dynastyID"), a)
		if err != nil {
			renderErr(w, render, err)
			return
		}
		render.JSON(w, http.StatusOK, d)
	}
}

func setStandingsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, ok := yearParam(w, r, render)
		if !ok {
			return
		}

		var entries []model.StandingsEntry
		if err := json.NewDecoder(r.Body).Decode(&entries); err != nil {
			renderError(w, render, http.StatusBadRequest, fmt.Sprintf("error parsing standings: %v", err))
			return
		}

		d, err := ctrl.SetStandings(r.Context(), chi.URLParam(r, "dynastyID"), year, entries)
		if err != nil {
			renderErr(w, render, err)
			return
		}
		render.JSON(w, http.StatusOK, d)
	}
}

func addGameHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g, err := decodeGame(r.Body)
		if err != nil {
			renderError(w, render, http.StatusBadRequest, err.Error())
			return
		}

		res, err := ctrl.AddGame(r.Context(), chi.URLParam(r, "dynastyID"), g)
		if err != nil {
			renderErr(w, render, err)
			return
		}
		render.JSON(w, http.StatusCreated, res)
	}
}

func updateGameHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g, err := decodeGame(r.Body)
		if err != nil {
			renderError(w, render, http.StatusBadRequest, err.Error())
			return
		}

		res, err := ctrl.UpdateGame(r.Context(), chi.URLParam(r, "dynastyID"), chi.URLParam(r, "gameID"), g)
		if err != nil {
			renderErr(w, render, err)
			return
		}
		render.JSON(w, http.StatusOK, res)
	}
}

// decodeGame reads a game document. The phase can be given directly or with
// the isBowlGame/isCFPQuarterfinal/... flags.
func decodeGame(body io.Reader) (*model.Game, error) {
	b, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("error reading game: %v", err)
	}

	var g model.Game
	if err := json.Unmarshal(b, &g); err != nil {
		return nil, fmt.Errorf("error parsing game: %v", err)
	}
	var flags model.GameFlags
	if err := json.Unmarshal(b, &flags); err != nil {
		return nil, fmt.Errorf("error parsing game: %v", err)
	}

	if g.Phase != model.PhaseUnknown {
		g.Phase = model.ParsePhase(string(g.Phase))
		if g.Phase == model.PhaseUnknown {
			return nil, errors.New("unknown game phase")
		}
	} else {
		g.Phase = model.PhaseFromFlags(flags, g.Week)
	}
	if g.Location != "" {
		g.Location = model.ParseLocation(string(g.Location))
	}
	return &g, nil
}

func importScheduleHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			renderError(w, render, http.StatusBadRequest, err.Error())
			return
		}

		file, _, err := r.FormFile("schedule-file")
		if err != nil {
			renderError(w, render, http.StatusBadRequest, err.Error())
			return
		}
		defer file.Close()

		n, err := ctrl.ImportSchedule(r.Context(), chi.URLParam(r, "dynastyID"), file)
		if err != nil {
			renderErr(w, render, err)
			return
		}
		render.JSON(w, http.StatusCreated, map[string]int{"imported": n})
	}
}

func getGameHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := ctrl.GetGameDetail(r.Context(), chi.URLParam(r, "dynastyID"), chi.URLParam(r, "gameID"))
		if err != nil {
			renderErr(w, render, err)
			return
		}
		render.JSON(w, http.StatusOK, res)
	}
}

func getCFPGameHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := ctrl.GetCFPGame(r.Context(), chi.URLParam(r, "dynastyID"), chi.URLParam(r, "cfpID"))
		if err != nil {
			renderErr(w, render, err)
			return
		}
		render.JSON(w, http.StatusOK, res)
	}
}

func seasonSummariesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := ctrl.GetSeasonSummaries(r.Context(), chi.URLParam(r, "dynastyID"))
		if err != nil {
			renderErr(w, render, err)
			return
		}
		render.JSON(w, http.StatusOK, res)
	}
}

func scheduleHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, ok := yearParam(w, r, render)
		if !ok {
			return
		}

		res, err := ctrl.GetSchedule(r.Context(), chi.URLParam(r, "dynastyID"), year)
		if err != nil {
			renderErr(w, render, err)
			return
		}
		render.JSON(w, http.StatusOK, res)
	}
}

func bracketHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, ok := yearParam(w, r, render)
		if !ok {
			return
		}

		res, err := ctrl.GetCFPBracket(r.Context(), chi.URLParam(r, "dynastyID"), year)
		if err != nil {
			renderErr(w, render, err)
			return
		}
		render.JSON(w, http.StatusOK, res)
	}
}

func bowlHistoryHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := ctrl.GetBowlHistory(r.Context(), chi.URLParam(r, "dynastyID"))
		if err != nil {
			renderErr(w, render, err)
			return
		}
		render.JSON(w, http.StatusOK, res)
	}
}

func yearParam(w http.ResponseWriter, r *http.Request, render *render.Render) (int, bool) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		renderError(w, render, http.StatusBadRequest, fmt.Sprintf("error parsing year: %v", err))
		return 0, false
	}
	return year, true
}

// Store errors can name hosts and tables, so they only go to the log.
const internalErrorMsg = "internal server error"

type errorResponse struct {
	Error string `json:"error"`
}

func renderError(w http.ResponseWriter, render *render.Render, status int, msg string) {
	render.JSON(w, status, errorResponse{Error: msg})
}

// renderErr picks the status for an error coming back from the controller.
func renderErr(w http.ResponseWriter, render *render.Render, err error) {
	var verr *controller.ValidationError
	switch {
	case errors.As(err, &verr):
		renderError(w, render, http.StatusBadRequest, verr.Msg)
	case errors.Is(err, db.ErrDynastyNotFound):
		renderError(w, render, http.StatusNotFound, "dynasty not found")
	case errors.Is(err, db.ErrGameNotFound):
		renderError(w, render, http.StatusNotFound, "game not found")
	default:
		log.Error().Err(err).Msg("request failed")
		renderError(w, render, http.StatusInternalServerError, internalErrorMsg)
	}
}
