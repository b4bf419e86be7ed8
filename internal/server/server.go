package server

// Server объединяет HTTP-серверы отдельных сущностей.
type Server struct {
	EfficiencyServer
}

func NewServer(
	efficiencyServer EfficiencyServer,
) Server {
	return Server{
		EfficiencyServer: efficiencyServer,
	}
}
