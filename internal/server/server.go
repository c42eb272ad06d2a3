package server

// Server объединяет специфичные HTTP сервера, отвечающие за обработку конкретных сущностей.
// Здесь это только ItemServer; health отдаётся им же.
type Server struct {
	ItemServer
}

func NewServer(
	itemServer ItemServer,
) Server {
	return Server{
		ItemServer: itemServer,
	}
}
