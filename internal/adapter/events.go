// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "slices"

// Subscribe implements [Session].
func (s *matrixSession) Subscribe(kind EventKind, fn EventHandler) (unsubscribe func()) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()

	id := s.nextSub
	s.nextSub++
	if s.subs[kind] == nil {
		s.subs[kind] = make(map[int]EventHandler)
	}
	s.subs[kind][id] = fn

	return func() {
		s.subsMu.Lock()
		defer s.subsMu.Unlock()
		delete(s.subs[kind], id)
	}
}

// emit delivers ev to the handlers registered for its kind. Handlers run
// on the caller's goroutine, in registration order, outside any lock.
func (s *matrixSession) emit(ev Event) {
	s.subsMu.Lock()
	ids := make([]int, 0, len(s.subs[ev.Kind]))
	for id := range s.subs[ev.Kind] {
		ids = append(ids, id)
	}
	handlers := make([]EventHandler, 0, len(ids))
	slices.Sort(ids)
	for _, id := range ids {
		handlers = append(handlers, s.subs[ev.Kind][id])
	}
	s.subsMu.Unlock()

	for _, h := range handlers {
		h(ev)
	}
}
