package tiered

import (
	"fmt"
	"strconv"
)

// GuestID используется вместо id пользователя, когда личность неизвестна.
const GuestID = "guest"

type Namespace struct {
	Name    string
	Version int
}

var (
	ShiftsNamespace = Namespace{Name: "shifts", Version: 2}
	RatesNamespace  = Namespace{Name: "rates", Version: 1}
)

// Key строит ключ вида "<namespace>_v<version>_<userId>".
func (n Namespace) Key(userID int64) string {
	id := GuestID
	if userID != 0 {
		id = strconv.FormatInt(userID, 10)
	}
	return fmt.Sprintf("%s_v%d_%s", n.Name, n.Version, id)
}
