package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	v1 "github.com/swingthoughts/swing-thoughts-api/internal/api/handler/v1"
	"github.com/swingthoughts/swing-thoughts-api/internal/api/middleware"
	"github.com/swingthoughts/swing-thoughts-api/internal/config"
	"github.com/swingthoughts/swing-thoughts-api/internal/repository"
	"github.com/swingthoughts/swing-thoughts-api/internal/repository/dao"
	"github.com/swingthoughts/swing-thoughts-api/internal/service"
	"github.com/swingthoughts/swing-thoughts-api/internal/worker"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB, fanout *worker.FanoutWorker, leaders *worker.LeaderWorker) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	liveHandler := v1.NewLiveHandler()
	go liveHandler.Run()

	authHandler := s.initAuthHandler(db)
	userHandler := s.initUserHandler(db, fanout)
	gateHandler := s.initGateHandler(db)
	feedHandler := s.initFeedHandler(db)
	scoreHandler := s.initScoreHandler(db, leaders, liveHandler)
	courseHandler := s.initCourseHandler(db)
	invitationalHandler := s.initInvitationalHandler(db)
	notificationHandler := s.initNotificationHandler(db)
	socialHandler := s.initSocialHandler(db)

	s.MountHandlers(
		authHandler,
		userHandler,
		gateHandler,
		feedHandler,
		scoreHandler,
		courseHandler,
		invitationalHandler,
		notificationHandler,
		socialHandler,
		liveHandler,
	)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initUserHandler(db *gorm.DB, fanout *worker.FanoutWorker) *v1.UserHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewUserService(repo, fanout)
	notifications := service.NewNotificationService(repository.NewNotificationRepository(dao.NewNotificationDAO(db)))
	handler := v1.NewUserHandler(svc, notifications)

	return handler
}

func (s *Server) initGateHandler(db *gorm.DB) *v1.GateHandler {
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	leaderRepo := repository.NewCourseLeaderRepository(dao.NewCourseLeaderDAO(db))
	effects := service.NewLaunchEffects(leaderRepo)
	svc := service.NewGateService(userRepo, effects)
	handler := v1.NewGateHandler(s.Config.API.JWTSigningKey, svc)

	return handler
}

func (s *Server) initFeedHandler(db *gorm.DB) *v1.FeedHandler {
	thoughtRepo := repository.NewFeedRepository(dao.NewThoughtDAO(db))
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	notifications := service.NewNotificationService(repository.NewNotificationRepository(dao.NewNotificationDAO(db)))
	svc := service.NewFeedService(thoughtRepo, userRepo, notifications)
	handler := v1.NewFeedHandler(svc)

	return handler
}

func (s *Server) initScoreHandler(db *gorm.DB, leaders *worker.LeaderWorker, live *v1.LiveHandler) *v1.ScoreHandler {
	leaderRepo := repository.NewCourseLeaderRepository(dao.NewCourseLeaderDAO(db))
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	badges := service.NewBadgeService(userRepo, leaderRepo, s.Config.Badges.LeaderSettleDelay)
	svc := service.NewScoreService(leaderRepo, leaders, badges, live)
	handler := v1.NewScoreHandler(svc)

	return handler
}

func (s *Server) initCourseHandler(db *gorm.DB) *v1.CourseHandler {
	leaderRepo := repository.NewCourseLeaderRepository(dao.NewCourseLeaderDAO(db))
	boardRepo := repository.NewLeaderboardRepository(dao.NewLeaderboardDAO(db))
	svc := service.NewCourseService(leaderRepo, boardRepo)
	handler := v1.NewCourseHandler(svc)

	return handler
}

func (s *Server) initInvitationalHandler(db *gorm.DB) *v1.InvitationalHandler {
	invitationalRepo := repository.NewInvitationalRepository(dao.NewInvitationalDAO(db))
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	notifications := service.NewNotificationService(repository.NewNotificationRepository(dao.NewNotificationDAO(db)))
	svc := service.NewInvitationalService(invitationalRepo, userRepo, notifications)
	handler := v1.NewInvitationalHandler(svc)

	return handler
}

func (s *Server) initSocialHandler(db *gorm.DB) *v1.SocialHandler {
	socialRepo := repository.NewSocialRepository(dao.NewSocialDAO(db))
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	svc := service.NewSocialService(socialRepo, userRepo)
	handler := v1.NewSocialHandler(svc)

	return handler
}

func (s *Server) initNotificationHandler(db *gorm.DB) *v1.NotificationHandler {
	repo := repository.NewNotificationRepository(dao.NewNotificationDAO(db))
	svc := service.NewNotificationService(repo)
	handler := v1.NewNotificationHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	userHandler *v1.UserHandler,
	gateHandler *v1.GateHandler,
	feedHandler *v1.FeedHandler,
	scoreHandler *v1.ScoreHandler,
	courseHandler *v1.CourseHandler,
	invitationalHandler *v1.InvitationalHandler,
	notificationHandler *v1.NotificationHandler,
	socialHandler *v1.SocialHandler,
	liveHandler *v1.LiveHandler,
) {
	const basePath = "/api/v1"

	public := s.Router.Group(basePath)
	{
		public.POST("/auth/signup", authHandler.HandleSignup)
		public.POST("/auth/login", authHandler.HandleLogin)

		// The gate takes anonymous callers; it parses the token itself.
		public.POST("/gate/resolve", gateHandler.HandleResolve)
	}

	authed := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		authed.GET("/users/:userID", userHandler.HandleGetUser)
		authed.GET("/me", userHandler.HandleGetMe)
		authed.PUT("/me/user-type", userHandler.HandleSetUserType)
		authed.PUT("/me/profile", userHandler.HandleSetupProfile)
		authed.POST("/me/locker/complete", userHandler.HandleCompleteLocker)
		authed.POST("/me/verification", userHandler.HandleSubmitVerification)
		authed.POST("/me/terms/accept", userHandler.HandleAcceptTerms)
		authed.POST("/me/welcome-tour/complete", userHandler.HandleCompleteWelcomeTour)
		authed.PUT("/me/game-identity", userHandler.HandleUpdateGameIdentity)
		authed.PUT("/me/challenge-badges", userHandler.HandleUpdateChallengeBadges)
		authed.PUT("/me/push-token", userHandler.HandleRegisterPushToken)

		authed.GET("/thoughts", feedHandler.HandleListThoughts)
		authed.POST("/thoughts", feedHandler.HandlePostThought)
		authed.POST("/thoughts/:thoughtID/likes", feedHandler.HandleLikeThought)
		authed.DELETE("/thoughts/:thoughtID/likes", feedHandler.HandleUnlikeThought)

		authed.POST("/scores", scoreHandler.HandleSubmitScore)
		authed.GET("/courses/:courseID/leader", courseHandler.HandleGetCourseLeader)
		authed.GET("/leaderboards", courseHandler.HandleListLeaderboards)
		authed.GET("/live/courses/:courseID", liveHandler.HandleWatchCourse)

		authed.POST("/invitationals", invitationalHandler.HandleCreateInvitational)
		authed.GET("/invitationals/:invitationalID", invitationalHandler.HandleGetInvitational)
		authed.POST("/invitationals/claim", invitationalHandler.HandleClaimInvite)

		authed.POST("/threads", socialHandler.HandleCreateThread)
		authed.POST("/leagues", socialHandler.HandleCreateLeague)
		authed.POST("/leagues/:leagueID/members", socialHandler.HandleJoinLeague)

		authed.GET("/notifications", notificationHandler.HandleListNotifications)
		authed.POST("/partner-requests", notificationHandler.HandleSendPartnerRequest)
	}

	s.Router.GET("/", v1.HandleHealthcheck)
}
