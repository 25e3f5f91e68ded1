package build_timeline

import (
	"sort"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
)

// connectorSegments строит линии переселений: брони с общим stay ID
// упорядочиваются по заезду, между последовательными парами проводится
// сегмент от конца одного блока к началу следующего.
//
// Брони без stay ID и группы из одной брони сегментов не дают. Если хотя бы
// один конец пары не отрендерен в текущем окне, сегмент пропускается -
// это не ошибка.
func connectorSegments(reservations []*domain.Reservation, rects map[int64]blockRect) []Connector {
	groups := make(map[string][]*domain.Reservation)
	for _, res := range reservations {
		if res.StayID == nil || *res.StayID == "" {
			continue
		}
		groups[*res.StayID] = append(groups[*res.StayID], res)
	}

	stayIDs := make([]string, 0, len(groups))
	for id := range groups {
		stayIDs = append(stayIDs, id)
	}
	sort.Strings(stayIDs)

	segments := make([]Connector, 0)

	for _, stayID := range stayIDs {
		group := groups[stayID]
		if len(group) < 2 {
			continue
		}

		sort.SliceStable(group, func(i, j int) bool {
			return group[i].CheckInDay().Before(group[j].CheckInDay())
		})

		for i := 0; i+1 < len(group); i++ {
			from, to := group[i], group[i+1]

			fromRect, fromOK := rects[from.ID]
			toRect, toOK := rects[to.ID]
			if !fromOK || !toOK {
				continue
			}

			segments = append(segments, Connector{
				StayID:            stayID,
				FromReservationID: from.ID,
				ToReservationID:   to.ID,
				X1:                fromRect.Left + fromRect.Width,
				Y1:                fromRect.Top + domain.BlockHeight/2,
				X2:                toRect.Left,
				Y2:                toRect.Top + domain.BlockHeight/2,
			})
		}
	}

	return segments
}
