package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/rodrigospisila/parish-backend/internals/constants"
	"github.com/rodrigospisila/parish-backend/internals/features/events/controller"
	"github.com/rodrigospisila/parish-backend/internals/middlewares/auth"
)

func EventRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEventController(db)

	events := api.Group("/events")

	// Fixed paths before the :id wildcard.
	events.Get("/", ctrl.GetEvents)
	events.Get("/upcoming", ctrl.GetUpcomingEvents)
	events.Get("/recurring", ctrl.GetRecurringEvents)
	events.Get("/range", ctrl.GetEventsByRange)
	events.Get("/type/:type", ctrl.GetEventsByType)

	// The route gate stays wide for PASTORAL_COORDINATOR; the resolver
	// narrows it to events their pastorals are linked to.
	manage := auth.OnlyRoles("Only coordinators and above can manage events", constants.PastoralCoordinatorAndAbove...)
	create := auth.OnlyRoles("Only coordinators and above can create events", constants.CoordinatorAndAbove...)

	events.Post("/", create, ctrl.CreateEvent)
	events.Post("/pastoral-links/:linkId/assignments", manage, ctrl.CreateEventAssignment)
	events.Get("/pastoral-links/:linkId/assignments", ctrl.GetEventAssignments)
	events.Patch("/pastoral-assignments/:assignmentId/checkin", ctrl.CheckInEventAssignment)
	events.Delete("/pastoral-assignments/:assignmentId", manage, ctrl.RemoveEventAssignment)

	events.Get("/:id", ctrl.GetEvent)
	events.Put("/:id", manage, ctrl.UpdateEvent)
	events.Delete("/:id", manage, ctrl.DeleteEvent)
	events.Post("/:id/duplicate", manage, ctrl.DuplicateEvent)

	events.Get("/:id/participants", ctrl.GetParticipants)
	events.Post("/:id/participants", ctrl.AddParticipant)
	events.Delete("/:id/participants/:memberId", ctrl.RemoveParticipant)

	events.Get("/:id/pastorals", ctrl.GetEventPastorals)
	events.Post("/:id/pastorals", manage, ctrl.AddEventPastoral)
	events.Delete("/:id/pastorals/:linkId", manage, ctrl.RemoveEventPastoral)
}
