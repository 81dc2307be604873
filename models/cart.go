package models

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// CartEntry is one requested product in a session cart. Quantity
// accumulates across adds; the variant fields keep whatever the first
// add specified.
type CartEntry struct {
	Quantity float64 `json:"cantidad"`
	Unit     string  `json:"unidad"`
	Size     string  `json:"tamanio"`
	Option   string  `json:"opcion"`
}

// Cart maps product id to the entry requested for it.
type Cart map[int]CartEntry

// CartStore holds session carts server-side, keyed by the cart_id
// cookie. Carts expire after the configured TTL; every mutation
// refreshes it.
type CartStore interface {
	Get(ctx context.Context, cartID string) (Cart, error)
	Add(ctx context.Context, cartID string, productID int, entry CartEntry) error
	Remove(ctx context.Context, cartID string, productID int) error
	Clear(ctx context.Context, cartID string) error
}

var Carts CartStore

func InitCartStore(ttl time.Duration) {
	if RedisClient != nil {
		Carts = NewRedisCartStore(RedisClient, ttl)
		log.Println("Cart store: redis")
		return
	}
	Carts = NewMemoryCartStore(ttl)
	log.Println("Cart store: in-memory")
}

func mergeEntry(cart Cart, productID int, entry CartEntry) {
	if existing, ok := cart[productID]; ok {
		existing.Quantity += entry.Quantity
		cart[productID] = existing
		return
	}
	cart[productID] = entry
}

type RedisCartStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCartStore(client *redis.Client, ttl time.Duration) *RedisCartStore {
	return &RedisCartStore{client: client, ttl: ttl}
}

func (s *RedisCartStore) key(cartID string) string {
	return "cart:" + cartID
}

func (s *RedisCartStore) Get(ctx context.Context, cartID string) (Cart, error) {
	raw, err := s.client.Get(ctx, s.key(cartID)).Result()
	if err == redis.Nil {
		return Cart{}, nil
	}
	if err != nil {
		return nil, err
	}

	cart := Cart{}
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *RedisCartStore) save(ctx context.Context, cartID string, cart Cart) error {
	if len(cart) == 0 {
		return s.client.Del(ctx, s.key(cartID)).Err()
	}
	raw, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(cartID), raw, s.ttl).Err()
}

func (s *RedisCartStore) Add(ctx context.Context, cartID string, productID int, entry CartEntry) error {
	cart, err := s.Get(ctx, cartID)
	if err != nil {
		return err
	}
	mergeEntry(cart, productID, entry)
	return s.save(ctx, cartID, cart)
}

func (s *RedisCartStore) Remove(ctx context.Context, cartID string, productID int) error {
	cart, err := s.Get(ctx, cartID)
	if err != nil {
		return err
	}
	if _, ok := cart[productID]; !ok {
		return nil
	}
	delete(cart, productID)
	return s.save(ctx, cartID, cart)
}

func (s *RedisCartStore) Clear(ctx context.Context, cartID string) error {
	return s.client.Del(ctx, s.key(cartID)).Err()
}

type memoryCart struct {
	cart      Cart
	expiresAt time.Time
}

// MemoryCartStore is the fallback used when Redis is unreachable. Same
// TTL semantics, enforced lazily on access.
type MemoryCartStore struct {
	mu    sync.Mutex
	carts map[string]*memoryCart
	ttl   time.Duration
	now   func() time.Time
}

func NewMemoryCartStore(ttl time.Duration) *MemoryCartStore {
	return &MemoryCartStore{
		carts: make(map[string]*memoryCart),
		ttl:   ttl,
		now:   time.Now,
	}
}

func (s *MemoryCartStore) live(cartID string) *memoryCart {
	mc, ok := s.carts[cartID]
	if !ok {
		return nil
	}
	if s.now().After(mc.expiresAt) {
		delete(s.carts, cartID)
		return nil
	}
	return mc
}

func (s *MemoryCartStore) Get(ctx context.Context, cartID string) (Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	mc := s.live(cartID)
	if mc == nil {
		return Cart{}, nil
	}

	copied := make(Cart, len(mc.cart))
	for id, entry := range mc.cart {
		copied[id] = entry
	}
	return copied, nil
}

func (s *MemoryCartStore) Add(ctx context.Context, cartID string, productID int, entry CartEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	mc := s.live(cartID)
	if mc == nil {
		mc = &memoryCart{cart: Cart{}}
		s.carts[cartID] = mc
	}
	mergeEntry(mc.cart, productID, entry)
	mc.expiresAt = s.now().Add(s.ttl)
	return nil
}

func (s *MemoryCartStore) Remove(ctx context.Context, cartID string, productID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	mc := s.live(cartID)
	if mc == nil {
		return nil
	}
	delete(mc.cart, productID)
	mc.expiresAt = s.now().Add(s.ttl)
	return nil
}

func (s *MemoryCartStore) Clear(ctx context.Context, cartID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, cartID)
	return nil
}
