package routes

import (
	"errors"

	"user-feedback-server/models"
	"user-feedback-server/storage"
	"user-feedback-server/utils"

	"github.com/kataras/iris/v12"
)

// loadOwnedFeedback fetches the feedback row for the {id} path parameter
// and enforces that the session identity owns it. On failure it writes
// the error status and returns nil; nothing has been mutated at that
// point.
func loadOwnedFeedback(ctx iris.Context) *models.Feedback {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		ctx.StopWithStatus(iris.StatusNotFound)
		return nil
	}

	feedback, err := storage.NewFeedbackStore(storage.DB).GetByID(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			ctx.StopWithStatus(iris.StatusNotFound)
		} else {
			ctx.StopWithStatus(iris.StatusInternalServerError)
		}
		return nil
	}

	current, ok := utils.CurrentUsername(ctx)
	if !ok || current != feedback.Username {
		ctx.StopWithStatus(iris.StatusUnauthorized)
		return nil
	}
	return feedback
}

func AddFeedbackForm(ctx iris.Context) {
	render(ctx, "add_feedback.html", iris.Map{
		"Username": ctx.Params().Get("username"),
		"Input":    FeedbackInput{},
	})
}

// AddFeedback creates a feedback row owned by the {username} path
// parameter. RequireOwner has already matched it to the session.
func AddFeedback(ctx iris.Context) {
	username := ctx.Params().Get("username")

	var input FeedbackInput
	if err := ctx.ReadForm(&input); err != nil {
		render(ctx, "add_feedback.html", iris.Map{
			"Errors":   fieldErrors(err),
			"Username": username,
			"Input":    input,
		})
		return
	}

	if _, err := storage.NewFeedbackStore(storage.DB).Create(input.Title, input.Content, username); err != nil {
		var verr *storage.ValidationError
		if errors.As(err, &verr) {
			render(ctx, "add_feedback.html", iris.Map{
				"Errors":   map[string]string{"Form": verr.Error()},
				"Username": username,
				"Input":    input,
			})
			return
		}
		ctx.StopWithStatus(iris.StatusInternalServerError)
		return
	}

	setFlash(ctx, "success", "Feedback Created!")
	ctx.Redirect("/users/"+username, iris.StatusFound)
}

// UpdateFeedbackForm pre-populates the form with the stored values.
func UpdateFeedbackForm(ctx iris.Context) {
	feedback := loadOwnedFeedback(ctx)
	if feedback == nil {
		return
	}

	render(ctx, "update_feedback.html", iris.Map{
		"Feedback": feedback,
		"Input":    FeedbackInput{Title: feedback.Title, Content: feedback.Content},
	})
}

func UpdateFeedback(ctx iris.Context) {
	feedback := loadOwnedFeedback(ctx)
	if feedback == nil {
		return
	}

	var input FeedbackInput
	if err := ctx.ReadForm(&input); err != nil {
		render(ctx, "update_feedback.html", iris.Map{
			"Errors":   fieldErrors(err),
			"Feedback": feedback,
			"Input":    input,
		})
		return
	}

	if _, err := storage.NewFeedbackStore(storage.DB).Update(feedback.ID, input.Title, input.Content); err != nil {
		var verr *storage.ValidationError
		if errors.As(err, &verr) {
			render(ctx, "update_feedback.html", iris.Map{
				"Errors":   map[string]string{"Form": verr.Error()},
				"Feedback": feedback,
				"Input":    input,
			})
			return
		}
		ctx.StopWithStatus(iris.StatusInternalServerError)
		return
	}

	setFlash(ctx, "success", "Feedback has been updated!")
	ctx.Redirect("/users/"+feedback.Username, iris.StatusFound)
}

func DeleteFeedback(ctx iris.Context) {
	feedback := loadOwnedFeedback(ctx)
	if feedback == nil {
		return
	}

	if err := storage.NewFeedbackStore(storage.DB).Delete(feedback.ID); err != nil {
		ctx.StopWithStatus(iris.StatusInternalServerError)
		return
	}

	setFlash(ctx, "info", "Feedback deleted!")
	ctx.Redirect("/users/"+feedback.Username, iris.StatusFound)
}

type FeedbackInput struct {
	Title   string `form:"title" validate:"required,max=100"`
	Content string `form:"content" validate:"required"`
}
