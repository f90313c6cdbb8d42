package generator

import (
	"github.com/amoylab/toolshop-datagen/internal/common/errorx"
	"github.com/amoylab/toolshop-datagen/internal/model"
	"github.com/amoylab/toolshop-datagen/internal/random"
)

type favoritePair struct {
	user, product int
}

// Favorites generates count distinct (user, product) pairs. Asking for more
// pairs than exist fails before any draw.
func Favorites(env *Env, count int, userIDs, productIDs []string) ([]model.Favorite, error) {
	possible := int64(len(userIDs)) * int64(len(productIDs))
	if int64(count) > possible {
		return nil, errorx.NewConstraintError(model.TableFavorites, "unique (user_id, product_id)",
			"%d favorites requested but only %d users x %d products = %d distinct pairs exist",
			count, len(userIDs), len(productIDs), possible)
	}

	var pairs []favoritePair
	if int64(count)*2 > possible {
		pairs = densePairs(env, count, len(productIDs), int(possible))
	} else {
		pairs = sparsePairs(env, count, len(userIDs), len(productIDs))
	}

	favorites := make([]model.Favorite, 0, count)
	for _, p := range pairs {
		f := model.Favorite{
			ID:        env.IDs.NewID(),
			UserID:    userIDs[p.user],
			ProductID: productIDs[p.product],
		}
		f.CreatedAt, f.UpdatedAt = env.stamps(env.yearsBack(1))
		favorites = append(favorites, f)
	}
	return favorites, nil
}

// sparsePairs draws pairs uniformly and rejects repeats
func sparsePairs(env *Env, count, users, products int) []favoritePair {
	seen := make(map[favoritePair]struct{}, count)
	pairs := make([]favoritePair, 0, count)
	for len(pairs) < count {
		p := favoritePair{env.Rand.IntBetween(0, users-1), env.Rand.IntBetween(0, products-1)}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		pairs = append(pairs, p)
	}
	return pairs
}

// densePairs samples pair indices without replacement; used when rejection
// sampling would spend most draws on repeats
func densePairs(env *Env, count, products, possible int) []favoritePair {
	all := make([]int, possible)
	for i := range all {
		all[i] = i
	}
	picked := random.PickN(env.Rand, all, count)
	pairs := make([]favoritePair, len(picked))
	for i, idx := range picked {
		pairs[i] = favoritePair{idx / products, idx % products}
	}
	return pairs
}
