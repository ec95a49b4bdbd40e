/*
 * Copyright (c) 2026, the wallet-bridge project.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package events

import (
	"fmt"
	"sync"

	model "github.com/HessamRisky-NEW/wallet-bridge/internal/permission/model"
	"github.com/HessamRisky-NEW/wallet-bridge/internal/system/constants"
	"github.com/HessamRisky-NEW/wallet-bridge/internal/system/log"
)

// Notifier fans permission lifecycle notifications out to subscribers.
// External UI and state layers subscribe to drive display of pending
// requests; the router publishes exactly once per newly created consent flow.
type Notifier struct {
	mu          sync.Mutex
	subscribers map[int]chan model.PermissionRequest
	nextID      int
}

// NewNotifier creates a notifier with no subscribers.
func NewNotifier() *Notifier {
	return &Notifier{
		subscribers: make(map[int]chan model.PermissionRequest),
	}
}

// Subscribe registers a listener and returns its channel plus an unsubscribe
// function. The channel is buffered; a subscriber that stops draining loses
// notifications rather than blocking the router.
func (n *Notifier) Subscribe() (<-chan model.PermissionRequest, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	ch := make(chan model.PermissionRequest, constants.DefaultNotificationBuffer)
	n.subscribers[id] = ch

	unsubscribe := func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if sub, ok := n.subscribers[id]; ok {
			delete(n.subscribers, id)
			close(sub)
		}
	}
	return ch, unsubscribe
}

// NotifyRequestPermission publishes a requestPermission notification.
func (n *Notifier) NotifyRequestPermission(request model.PermissionRequest) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, sub := range n.subscribers {
		select {
		case sub <- request:
		default:
			log.GetLogger().Warn(fmt.Sprintf("Dropping permission notification for origin: %s", request.Origin))
		}
	}
}
