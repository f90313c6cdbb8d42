package generator

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/amoylab/toolshop-datagen/internal/catalog"
	"github.com/amoylab/toolshop-datagen/internal/identity"
	"github.com/amoylab/toolshop-datagen/internal/model"
	"github.com/amoylab/toolshop-datagen/internal/random"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var roleTable = random.MustWeighted(
	random.Weighted[model.UserRole]{Value: model.RoleCustomer, Weight: 85},
	random.Weighted[model.UserRole]{Value: model.RoleAdmin, Weight: 5},
	random.Weighted[model.UserRole]{Value: model.RoleManager, Weight: 3},
	random.Weighted[model.UserRole]{Value: model.RoleSalesRep, Weight: 4},
	random.Weighted[model.UserRole]{Value: model.RoleWarehouseStaff, Weight: 3},
)

// Users generates count users with globally unique emails
func Users(env *Env, count int) ([]model.User, error) {
	cfg := env.Cfg
	users := make([]model.User, 0, count)
	emails := make(map[string]struct{}, count)

	for i := 0; i < count; i++ {
		first := random.Pick(env.Rand, catalog.FirstNames)
		last := random.Pick(env.Rand, catalog.LastNames)
		domain := random.Pick(env.Rand, catalog.EmailDomains)
		role := roleTable.Pick(env.Rand)
		created, updated := env.stamps(env.yearsBack(2))

		u := model.User{
			ID:        env.IDs.NewID(),
			FirstName: first,
			LastName:  last,
			Email:     uniqueEmail(first, last, domain, emails),
			Role:      role,
		}
		u.CreatedAt, u.UpdatedAt = created, updated

		u.Enabled = role == model.RoleAdmin || env.Rand.Bool(cfg.UserEnabledProbability)
		if !u.Enabled {
			u.FailedLoginAttempts = env.Rand.IntBetween(0, 3)
		}

		totpP := cfg.UserTOTPProbability
		if role == model.RoleAdmin {
			totpP = cfg.AdminTOTPProbability
		}
		if env.Rand.Bool(totpP) {
			u.TOTPEnabled = true
			u.TOTPSecret = ptr(env.Rand.Hex(16))
			u.TOTPVerifiedAt = ptr(env.Rand.TimeBetween(created, env.Anchor))
		}

		if env.Rand.Bool(cfg.SocialProviderProbability) {
			id, err := uuid.NewRandomFromReader(env.Rand)
			if err != nil {
				return nil, err
			}
			u.Provider = ptr(random.Pick(env.Rand, catalog.SocialProviders))
			u.UID = ptr(id.String())
		}

		fillAddress(env, &u)

		dob := env.Rand.TimeBetween(env.yearsBack(75), env.yearsBack(18)).Truncate(24 * time.Hour)
		u.DOB = &dob
		if env.Rand.Bool(cfg.PasswordProbability) {
			u.Password = ptr(cfg.PasswordHash)
		}

		users = append(users, u)
	}

	env.Logger.Debug("generated users", zap.Int("count", len(users)))
	return users, nil
}

// uniqueEmail builds first.last@domain and appends 2, 3, ... to the local
// part until the address is unused
func uniqueEmail(first, last, domain string, taken map[string]struct{}) string {
	local := emailToken(first) + "." + emailToken(last)
	email := local + "@" + domain
	for n := 2; ; n++ {
		if _, dup := taken[email]; !dup {
			break
		}
		email = local + strconv.Itoa(n) + "@" + domain
	}
	taken[email] = struct{}{}
	return email
}

func emailToken(name string) string {
	return strings.ReplaceAll(identity.Slugify(name), "-", "")
}

func fillAddress(env *Env, u *model.User) {
	country := random.Pick(env.Rand, catalog.Countries)
	u.Street = ptr(streetAddress(env))
	u.City = ptr(random.Pick(env.Rand, country.Cities))
	if len(country.States) > 0 {
		u.State = ptr(random.Pick(env.Rand, country.States))
	}
	u.Country = ptr(country.Code)
	u.PostalCode = ptr(postcode(env, country.Postcode))
	u.Phone = ptr(fmt.Sprintf("%s %s %s", country.PhoneCode, env.Rand.Digits(3), env.Rand.Digits(7)))
}

func streetAddress(env *Env) string {
	return fmt.Sprintf("%d %s", env.Rand.IntBetween(1, 999), random.Pick(env.Rand, catalog.StreetNames))
}

// postcode expands a pattern where '#' is a digit and '?' an uppercase letter
func postcode(env *Env, pattern string) string {
	var sb strings.Builder
	for _, r := range pattern {
		switch r {
		case '#':
			sb.WriteString(env.Rand.Digits(1))
		case '?':
			sb.WriteString(env.Rand.Letters(1))
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
