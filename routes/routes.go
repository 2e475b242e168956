package routes

import (
    "backend/config"
    "backend/controllers"
    "backend/middlewares"
    "backend/services"

    "github.com/gin-gonic/gin"
)

func SetupRouter(rt *services.RealtimeHub, push *services.PushService) *gin.Engine {
    r := gin.Default()

    entrySvc := services.NewEntryService()
    analyticsSvc := services.NewAnalyticsService(config.DB)

    entryCtl := controllers.NewEntryController(entrySvc, analyticsSvc, rt)
    analyticsCtl := controllers.NewAnalyticsController(analyticsSvc)
    realtimeCtl := controllers.NewRealtimeController(rt)
    deviceCtl := controllers.NewDeviceController(push)
    devCtl := controllers.NewDevController(push)

    // Public auth routes
    auth := r.Group("/auth")
    {
        auth.POST("/register", controllers.Register)
        auth.POST("/login", controllers.Login)
        auth.POST("/verify-mfa", controllers.VerifyMFA)
        auth.POST("/forgot-password", controllers.ForgotPassword)
        auth.POST("/reset-password", controllers.ResetPassword)
    }

    // Protected user routes
    user := r.Group("/user")
    user.Use(middlewares.AuthMiddleware())
    {
        user.GET("/profile", controllers.GetProfile)
        user.PUT("/profile", controllers.UpdateProfile)
        user.DELETE("/profile", controllers.DeleteAccount)
        user.POST("/notifications/toggle", controllers.ToggleNotifications)
    }

    // Food entry log
    entries := r.Group("/entries")
    entries.Use(middlewares.AuthMiddleware())
    {
        entries.POST("", entryCtl.AddEntry)
        entries.GET("", entryCtl.ListEntries)
        entries.GET("/recent", entryCtl.ListRecent)
        entries.GET("/:id", entryCtl.GetEntry)
        entries.PUT("/:id", entryCtl.UpdateEntry)
        entries.DELETE("/:id", entryCtl.DeleteEntry)
        entries.POST("/:id/photo", entryCtl.UploadEntryPhoto)
    }

    // Food catalog lookups
    food := r.Group("/food")
    food.Use(middlewares.AuthMiddleware())
    {
        food.GET("/search", controllers.SearchFoods)
        food.GET("/barcode/:code", controllers.LookupBarcode)
        food.POST("/recognize", controllers.RecognizeFood)
    }

    // Aggregated views
    analytics := r.Group("/analytics")
    analytics.Use(middlewares.AuthMiddleware())
    {
        analytics.GET("/day", analyticsCtl.GetDayView)
        analytics.GET("/week", analyticsCtl.GetWeekView)
    }

    // Synced fitness data
    fitness := r.Group("/fitness")
    fitness.Use(middlewares.AuthMiddleware())
    {
        fitness.POST("", controllers.UpsertFitness)
        fitness.GET("", controllers.GetFitness)
    }

    // Daily targets
    goals := r.Group("/goals")
    goals.Use(middlewares.AuthMiddleware())
    {
        goals.GET("", controllers.GetGoals)
        goals.PUT("", controllers.UpdateGoals)
        goals.GET("/by-date", controllers.GetGoalsByDate)
    }

    recs := r.Group("/recommendations")
    recs.Use(middlewares.AuthMiddleware())
    {
        recs.GET("", controllers.GetRecommendations)
    }

    devices := r.Group("/devices")
    devices.Use(middlewares.AuthMiddleware())
    {
        devices.POST("/register", deviceCtl.Register)
    }

    ws := r.Group("/ws")
    ws.Use(middlewares.AuthMiddleware())
    {
        ws.GET("/events", realtimeCtl.EventsWS)
    }

    dev := r.Group("/dev")
    dev.Use(middlewares.AuthMiddleware())
    {
        dev.POST("/push-test", devCtl.PushTest)
        dev.POST("/log-reminder", devCtl.LogReminder)
        dev.POST("/upload-image", controllers.DevUploadImage)
    }

    return r
}
