package app

import (
	"errors"
	"net/http"

	"github.com/metinatakli/theater-box-office/api"
	"github.com/metinatakli/theater-box-office/internal/domain"
)

func (app *Application) CreatePlayHandler(w http.ResponseWriter, r *http.Request) {
	var input api.CreatePlayHandlerJSONRequestBody

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	play := domain.Play{
		Title:       input.Title,
		Description: input.Description,
		Genres:      input.Genres,
		Actors:      input.Actors,
	}

	err = app.playRepo.Create(r.Context(), &play)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toApiPlay(play), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetPlayHandler(w http.ResponseWriter, r *http.Request, playId int) {
	play, err := app.playRepo.GetById(r.Context(), playId)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponse(w, r)
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiPlay(*play), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiPlay(play domain.Play) api.Play {
	genres := play.Genres
	if genres == nil {
		genres = []string{}
	}

	actors := play.Actors
	if actors == nil {
		actors = []string{}
	}

	return api.Play{
		Id:          play.ID,
		Title:       play.Title,
		Description: play.Description,
		Genres:      genres,
		Actors:      actors,
	}
}
