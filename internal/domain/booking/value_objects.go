package booking

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	ErrNegativeAmount      = errors.New("amount cannot be negative")
	ErrInvalidContactName  = errors.New("contact name is required (max 100 characters)")
	ErrInvalidContactPhone = errors.New("contact phone is invalid")
	ErrInvalidRoomsCount   = errors.New("rooms count must be at least 1")
	ErrInvalidGuestCount   = errors.New("guest count must be at least 1")
)

const maxContactNameLength = 100

var phoneRegex = regexp.MustCompile(`^\+?[0-9][0-9\-\s()]{5,19}$`)

// Money is an amount in minor units of the single supported currency.
type Money struct {
	minor int64
}

func NewMoney(minor int64) (Money, error) {
	if minor < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{minor: minor}, nil
}

func (m Money) Minor() int64 {
	return m.minor
}

type Contact struct {
	name  string
	phone string
}

func NewContact(name, phone string) (Contact, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" || utf8.RuneCountInString(name) > maxContactNameLength {
		return Contact{}, ErrInvalidContactName
	}
	if !phoneRegex.MatchString(phone) {
		return Contact{}, ErrInvalidContactPhone
	}
	return Contact{name: name, phone: phone}, nil
}

func (c Contact) Name() string  { return c.name }
func (c Contact) Phone() string { return c.phone }

type Occupancy struct {
	rooms  int
	guests int
}

func NewOccupancy(rooms, guests int) (Occupancy, error) {
	if rooms < 1 {
		return Occupancy{}, ErrInvalidRoomsCount
	}
	if guests < 1 {
		return Occupancy{}, ErrInvalidGuestCount
	}
	return Occupancy{rooms: rooms, guests: guests}, nil
}

func (o Occupancy) Rooms() int  { return o.rooms }
func (o Occupancy) Guests() int { return o.guests }
