package cmd

type Config struct {
	HTTPPort                string
	DBHost                  string
	DBPort                  string
	DBUser                  string
	DBPassword              string
	DBName                  string
	DBSslMode               string
	KafkaHost               string
	KafkaOrderCreatedTopic  string
	KafkaStatusChangedTopic string
	RedisAddr               string
	CancellationSchedule    string
	PaymentMaxAge           string
}
