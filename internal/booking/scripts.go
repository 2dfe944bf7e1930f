package booking

import "github.com/redis/go-redis/v9"

// KEYS: schedule hash, booking key, user index, slot holders hash.
// ARGV: slot id, booking JSON, booking id, user id.
var bookScript = redis.NewScript(`
local raw = redis.call('HGET', KEYS[1], ARGV[1])
if not raw then
  return {'not_found'}
end
if redis.call('HEXISTS', KEYS[4], ARGV[4]) == 1 then
  return {'duplicate'}
end
local slot = cjson.decode(raw)
local current = tonumber(slot.currentBookings) or 0
local max = tonumber(slot.maxCapacity) or 0
if current >= max then
  return {'full'}
end
slot.currentBookings = current + 1
local encoded = cjson.encode(slot)
redis.call('HSET', KEYS[1], ARGV[1], encoded)
redis.call('SET', KEYS[2], ARGV[2])
redis.call('RPUSH', KEYS[3], ARGV[3])
redis.call('HSET', KEYS[4], ARGV[4], ARGV[3])
return {'ok', encoded}
`)

// KEYS: schedule hash, booking key, slot holders hash.
// ARGV: slot id, user id, booking id, cancelled booking JSON.
var cancelScript = redis.NewScript(`
if redis.call('HGET', KEYS[3], ARGV[2]) ~= ARGV[3] then
  return {'not_active'}
end
redis.call('HDEL', KEYS[3], ARGV[2])
redis.call('SET', KEYS[2], ARGV[4])
local raw = redis.call('HGET', KEYS[1], ARGV[1])
if raw then
  local slot = cjson.decode(raw)
  local current = tonumber(slot.currentBookings) or 0
  if current > 0 then
    slot.currentBookings = current - 1
  end
  redis.call('HSET', KEYS[1], ARGV[1], cjson.encode(slot))
end
return {'ok'}
`)
