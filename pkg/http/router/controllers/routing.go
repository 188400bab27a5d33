package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	helper "github.com/gridnav/gridrouter/pkg/http/router/routerhelper"
	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

type navigationAPI struct {
	navigationService NavigationService
	log               *zap.Logger
}

func New(navigationService NavigationService, log *zap.Logger) *navigationAPI {
	return &navigationAPI{
		navigationService: navigationService,
		log:               log,
	}
}

func (api *navigationAPI) Routes(group *helper.RouteGroup) {
	group.GET("/navigation/route", api.shortestPath)
	group.GET("/navigation/terrain", api.terrainMap)
}

func (api *navigationAPI) shortestPath(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request routeRequest
		err     error
	)

	query := r.URL.Query()

	request.StartRow, err = strconv.Atoi(query.Get("start_row"))
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("start_row is required and must be a valid integer"))
		return
	}
	request.StartCol, err = strconv.Atoi(query.Get("start_col"))
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("start_col is required and must be a valid integer"))
		return
	}
	request.GoalRow, err = strconv.Atoi(query.Get("goal_row"))
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("goal_row is required and must be a valid integer"))
		return
	}
	request.GoalCol, err = strconv.Atoi(query.Get("goal_col"))
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("goal_col is required and must be a valid integer"))
		return
	}

	request.Weight = 1.0
	if weightParam := query.Get("weight"); weightParam != "" {
		request.Weight, err = strconv.ParseFloat(weightParam, 64)
		if err != nil {
			api.BadRequestResponse(w, r, errors.New("weight must be a valid float"))
			return
		}
	}

	includeVisited := query.Get("include_visited") == "true"

	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vvString))
		return
	}

	route, err := api.navigationService.ShortestPath(request.StartRow, request.StartCol,
		request.GoalRow, request.GoalCol, request.Weight, includeVisited)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": newRouteResponse(route)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *navigationAPI) terrainMap(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	side, rows := api.navigationService.TerrainSnapshot()

	headers := make(http.Header)

	response := terrainResponse{GridSide: side, Rows: rows}
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": response}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}
