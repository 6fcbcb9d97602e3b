package uuid

import (
	"database/sql/driver"
	"fmt"
)

// Scan implements the sql.Scanner interface. It accepts the canonical or URN
// text form as string or []byte, or the raw 16 bytes. A NULL leaves u
// unchanged.
func (u *UUID) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		return nil
	case string:
		id, err := Parse(src)
		if err != nil {
			return err
		}
		*u = id
		return nil
	case []byte:
		if len(src) == 0 {
			return nil
		}
		if len(src) == Size {
			copy(u[:], src)
			return nil
		}
		id, err := ParseBytes(src)
		if err != nil {
			return err
		}
		*u = id
		return nil
	default:
		return fmt.Errorf("uuid: cannot scan type %T into UUID", src)
	}
}

// Value implements the driver.Valuer interface. UUIDs are stored in their
// canonical text form.
func (u UUID) Value() (driver.Value, error) {
	return u.String(), nil
}
