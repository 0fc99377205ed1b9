package main

import (
	"log"
	"os"
	"time"

	"user-feedback-server/routes"
	"user-feedback-server/storage"
	"user-feedback-server/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/sessions"
	"github.com/kataras/iris/v12/sessions/sessiondb/redis"
)

func newApp() *iris.Application {
	app := iris.New()
	app.Validator = validator.New()
	// An empty POST body must fail ReadForm instead of skipping
	// validation on a zero-value input struct.
	app.Configure(iris.WithEmptyFormError)

	sess := sessions.New(sessions.Config{
		Cookie:       "feedback_session",
		Expires:      24 * time.Hour,
		AllowReclaim: true,
		SessionIDGenerator: func(iris.Context) string {
			return uuid.NewString()
		},
	})

	// Sessions survive restarts when a Redis address is configured;
	// otherwise they live in memory.
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		db := redis.New(redis.Config{
			Network:   "tcp",
			Addr:      redisURL,
			Timeout:   30 * time.Second,
			MaxActive: 10,
			Prefix:    "feedback-",
			Driver:    redis.GoRedis(),
		})
		iris.RegisterOnInterrupt(func() {
			db.Close()
		})
		sess.UseDatabase(db)
		log.Println("sessions persisted to redis at", redisURL)
	}

	app.Use(sess.Handler())
	app.RegisterView(iris.HTML("./views", ".html"))

	app.OnErrorCode(iris.StatusUnauthorized, func(ctx iris.Context) {
		ctx.View("error.html", iris.Map{"Status": iris.StatusUnauthorized, "Message": "You are not authorized to view this page."})
	})
	app.OnErrorCode(iris.StatusNotFound, func(ctx iris.Context) {
		ctx.View("error.html", iris.Map{"Status": iris.StatusNotFound, "Message": "Page not found."})
	})

	app.Get("/health", func(ctx iris.Context) {
		ctx.JSON(iris.Map{"status": "ok"})
	})

	app.Get("/", routes.Home)
	app.Get("/register", routes.RegisterForm)
	app.Post("/register", routes.Register)
	app.Get("/login", routes.LoginForm)
	app.Post("/login", routes.Login)
	app.Get("/logout", routes.Logout)

	users := app.Party("/users/{username}")
	users.Use(utils.RequireOwner)
	{
		users.Get("/", routes.Profile)
		users.Get("/feedback/add", routes.AddFeedbackForm)
		users.Post("/feedback/add", routes.AddFeedback)
		users.Post("/delete", routes.DeleteUser)
	}

	feedback := app.Party("/feedback/{id:uint}")
	{
		feedback.Get("/update", routes.UpdateFeedbackForm)
		feedback.Post("/update", routes.UpdateFeedback)
		feedback.Post("/delete", routes.DeleteFeedback)
	}

	return app
}

func main() {
	// Only load .env in development
	if os.Getenv("RENDER") == "" {
		godotenv.Load()
	}

	storage.InitializeDB()

	app := newApp()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
