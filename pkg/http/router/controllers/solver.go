package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"
	helper "github.com/lintang-b-s/Pyramidx/pkg/http/router/routerhelper"
	"go.uber.org/zap"
)

// maxBodyBytes bounds the triangle text accepted by /solve.
const maxBodyBytes = 8 << 20

type solverAPI struct {
	solverService SolverService
	log           *zap.Logger
	validate      *validator.Validate
	trans         ut.Translator
}

func New(solverService SolverService, log *zap.Logger) *solverAPI {
	validate := validator.New()
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	return &solverAPI{
		solverService: solverService,
		log:           log,
		validate:      validate,
		trans:         trans,
	}
}

func (api *solverAPI) Routes(group *helper.RouteGroup) {
	group.POST("/solve", api.solve)
	group.GET("/default", api.solveDefault)
}

func (api *solverAPI) solve(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request solveRequest
		err     error
	)
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := r.Body.Close(); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}

	if err := api.validate.Struct(request); err != nil {
		vv := translateError(err, api.trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vvString))
		return
	}

	res, err := api.solverService.Solve(r.Context(), request.Triangle, request.Strategy)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewSolveResponse(res)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *solverAPI) solveDefault(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	res, err := api.solverService.SolveDefault(r.Context())
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewSolveResponse(res)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}
