package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Minio    Minio
		Logger   Logger
	}
	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)

type (
	InternalConfig struct {
		App       App
		JWT       JWT
		TwoFactor TwoFactor
		Expo      Expo
		RabbitMQ  AppRabbitMQ
		Minio     AppMinio
	}

	App struct {
		Env                      string
		Port                     string
		Version                  string
		Timezone                 string
		EndpointPrefix           string
		MaxRequests              int
		ShutdownTimeoutInSeconds int
		OTPCooldownInSeconds     int
	}

	JWT struct {
		Secret                    string
		ChallengeExpTimeInMinutes int
		LoginExpTimeInDays        int
	}

	TwoFactor struct {
		APIKey                  string
		BaseUrl                 string
		RequestTimeoutInSeconds int
		MaxRequestsPerSecond    int
	}

	Expo struct {
		PushUrl                 string
		RequestTimeoutInSeconds int
	}

	AppRabbitMQ struct {
		PushQueue string
	}

	AppMinio struct {
		BucketName string
	}
)
