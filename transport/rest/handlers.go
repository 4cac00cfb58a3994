package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/rocketscienceinc/cardgames-backend/internal/apperror"
	"github.com/rocketscienceinc/cardgames-backend/internal/entity"
	"github.com/rocketscienceinc/cardgames-backend/internal/grid"
	"github.com/rocketscienceinc/cardgames-backend/internal/repository"
)

const maxBodyBytes = 1 << 10

var errBadRequest = errors.New("bad request")

type concentrationService interface {
	NewGame(ctx context.Context, pairs int) (*entity.ConcentrationGame, error)
	GetGame(ctx context.Context, id string) (*entity.ConcentrationGame, error)
	ChooseCard(ctx context.Context, id string, index int) (*entity.ConcentrationGame, error)
	Layout(ctx context.Context, id string, frame grid.Rect) (*grid.Grid, error)
}

type setService interface {
	NewGame(ctx context.Context) (*entity.SetGame, error)
	GetGame(ctx context.Context, id string) (*entity.SetGame, error)
	Select(ctx context.Context, id string, index int) (*entity.SetGame, error)
	DealMore(ctx context.Context, id string) (*entity.SetGame, error)
	Cheat(ctx context.Context, id string) ([3]int, bool, error)
	Layout(ctx context.Context, id string, frame grid.Rect) (*grid.Grid, error)
}

type gameHandlers struct {
	logger *slog.Logger

	concentration concentrationService
	set           setService
}

type newConcentrationRequest struct {
	Pairs int `json:"pairs"`
}

type indexRequest struct {
	Index *int `json:"index"`
}

func (that *gameHandlers) newConcentration(w http.ResponseWriter, r *http.Request) {
	var request newConcentrationRequest
	if err := decodeBody(r, &request, true); err != nil {
		that.writeError(w, "newConcentration", err)
		return
	}

	game, err := that.concentration.NewGame(r.Context(), request.Pairs)
	if err != nil {
		that.writeError(w, "newConcentration", err)
		return
	}

	that.writeJSON(w, http.StatusCreated, newConcentrationView(game))
}

func (that *gameHandlers) getConcentration(w http.ResponseWriter, r *http.Request) {
	game, err := that.concentration.GetGame(r.Context(), r.PathValue("id"))
	if err != nil {
		that.writeError(w, "getConcentration", err)
		return
	}

	that.writeJSON(w, http.StatusOK, newConcentrationView(game))
}

func (that *gameHandlers) chooseCard(w http.ResponseWriter, r *http.Request) {
	index, err := decodeIndex(r)
	if err != nil {
		that.writeError(w, "chooseCard", err)
		return
	}

	game, err := that.concentration.ChooseCard(r.Context(), r.PathValue("id"), index)
	if err != nil {
		that.writeError(w, "chooseCard", err)
		return
	}

	that.writeJSON(w, http.StatusOK, newConcentrationView(game))
}

func (that *gameHandlers) concentrationLayout(w http.ResponseWriter, r *http.Request) {
	frame, err := parseFrame(r)
	if err != nil {
		that.writeError(w, "concentrationLayout", err)
		return
	}

	cells, err := that.concentration.Layout(r.Context(), r.PathValue("id"), frame)
	if err != nil {
		that.writeError(w, "concentrationLayout", err)
		return
	}

	that.writeJSON(w, http.StatusOK, newLayoutView(cells))
}

func (that *gameHandlers) newSet(w http.ResponseWriter, r *http.Request) {
	game, err := that.set.NewGame(r.Context())
	if err != nil {
		that.writeError(w, "newSet", err)
		return
	}

	that.writeJSON(w, http.StatusCreated, newSetView(game))
}

func (that *gameHandlers) getSet(w http.ResponseWriter, r *http.Request) {
	game, err := that.set.GetGame(r.Context(), r.PathValue("id"))
	if err != nil {
		that.writeError(w, "getSet", err)
		return
	}

	that.writeJSON(w, http.StatusOK, newSetView(game))
}

func (that *gameHandlers) selectCard(w http.ResponseWriter, r *http.Request) {
	index, err := decodeIndex(r)
	if err != nil {
		that.writeError(w, "selectCard", err)
		return
	}

	game, err := that.set.Select(r.Context(), r.PathValue("id"), index)
	if err != nil {
		that.writeError(w, "selectCard", err)
		return
	}

	that.writeJSON(w, http.StatusOK, newSetView(game))
}

func (that *gameHandlers) dealMore(w http.ResponseWriter, r *http.Request) {
	game, err := that.set.DealMore(r.Context(), r.PathValue("id"))
	if err != nil {
		that.writeError(w, "dealMore", err)
		return
	}

	that.writeJSON(w, http.StatusOK, newSetView(game))
}

func (that *gameHandlers) cheat(w http.ResponseWriter, r *http.Request) {
	positions, found, err := that.set.Cheat(r.Context(), r.PathValue("id"))
	if err != nil {
		that.writeError(w, "cheat", err)
		return
	}

	that.writeJSON(w, http.StatusOK, newCheatView(positions, found))
}

func (that *gameHandlers) setLayout(w http.ResponseWriter, r *http.Request) {
	frame, err := parseFrame(r)
	if err != nil {
		that.writeError(w, "setLayout", err)
		return
	}

	cells, err := that.set.Layout(r.Context(), r.PathValue("id"), frame)
	if err != nil {
		that.writeError(w, "setLayout", err)
		return
	}

	that.writeJSON(w, http.StatusOK, newLayoutView(cells))
}

// decodeBody reads a small JSON body; an empty body is accepted only when
// the request has no required fields.
func decodeBody(r *http.Request, target any, emptyAllowed bool) error {
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	err := decoder.Decode(target)
	if errors.Is(err, io.EOF) && emptyAllowed {
		return nil
	}

	if err != nil {
		return fmt.Errorf("%w: %w", errBadRequest, err)
	}

	return nil
}

func decodeIndex(r *http.Request) (int, error) {
	var request indexRequest
	if err := decodeBody(r, &request, false); err != nil {
		return 0, err
	}

	if request.Index == nil {
		return 0, fmt.Errorf("%w: index is required", errBadRequest)
	}

	return *request.Index, nil
}

func parseFrame(r *http.Request) (grid.Rect, error) {
	query := r.URL.Query()

	width, err := strconv.ParseFloat(query.Get("width"), 64)
	if err != nil {
		return grid.Rect{}, fmt.Errorf("%w: width: %w", errBadRequest, err)
	}

	height, err := strconv.ParseFloat(query.Get("height"), 64)
	if err != nil {
		return grid.Rect{}, fmt.Errorf("%w: height: %w", errBadRequest, err)
	}

	return grid.Rect{Width: width, Height: height}, nil
}

func (that *gameHandlers) writeError(w http.ResponseWriter, method string, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errBadRequest), errors.Is(err, apperror.ErrInvalidArgument):
		status = http.StatusBadRequest
	case errors.Is(err, repository.ErrGameNotFound):
		status = http.StatusNotFound
	}

	log := that.logger.With("method", method)
	if status == http.StatusInternalServerError {
		log.Error("request failed", "error", err)
		that.writeJSON(w, status, errorView{Error: http.StatusText(status)})
		return
	}

	log.Debug("request rejected", "status", status, "error", err)
	that.writeJSON(w, status, errorView{Error: err.Error()})
}

func (that *gameHandlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "status", status, "error", err)
	}
}
