package repositories

type Repos struct {
	User    UserRepo
	Request RequestRepo
}

func New() *Repos {
	return &Repos{
		User:    &DBUserRepo{},
		Request: &DBRequestRepo{},
	}
}
