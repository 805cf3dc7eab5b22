package routers

import (
	"labportal-service/internal/app/services/core/workflow"

	"github.com/go-chi/chi/v5"
)

func attachWorkflowRoutes(r chi.Router, workflowController *workflow.WorkflowController) {
	r.Route("/{orderCode}", func(r chi.Router) {
		r.Post("/readiness", workflowController.CheckReadiness)
		r.Post("/reservation", workflowController.ReserveReagents)
		r.Post("/start", workflowController.StartExecution)
		r.Get("/", workflowController.GetExecution)
		r.Post("/result", workflowController.SaveResult)
		r.Delete("/", workflowController.Teardown)
	})
}
