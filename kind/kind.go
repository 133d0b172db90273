// Package kind is the event kind number of the nostr protocol, as carried in
// the kind field of NIP-19 nevent and naddr entities.
package kind

import (
	"strconv"
)

// T - which will be externally referenced as kind.T is the event type in the
// nostr protocol. NIP-19 carries it as a 32 bit big endian integer so that is
// the width used here even though events in the wild stay below 65536.
type T struct {
	K uint32
}

func New[V uint16 | uint32 | uint64 | int32 | int](k V) (ki *T) { return &T{uint32(k)} }

func (k *T) ToU32() uint32 {
	if k == nil {
		return 0
	}
	return k.K
}

// Name returns the human readable name of a known kind, or an empty string.
func (k *T) Name() string {
	if k == nil {
		return ""
	}
	return Map[k.K]
}

func (k *T) String() string {
	if k == nil {
		return ""
	}
	return strconv.FormatUint(uint64(k.K), 10)
}

// Equal returns true if both kinds are nil or both have the same number.
func (k *T) Equal(k2 *T) bool {
	if k == nil || k2 == nil {
		return k == k2
	}
	return k.K == k2.K
}

func (k *T) MarshalJSON() (b []byte, err error) {
	return strconv.AppendUint(nil, uint64(k.ToU32()), 10), nil
}

func (k *T) UnmarshalJSON(b []byte) (err error) {
	var n uint64
	if n, err = strconv.ParseUint(string(b), 10, 32); err != nil {
		return
	}
	k.K = uint32(n)
	return
}

// IsEphemeral returns true if the event kind is an ephemeral event. (not to be
// stored)
func (k *T) IsEphemeral() bool {
	return k.K >= EphemeralStart.K && k.K < EphemeralEnd.K
}

// IsReplaceable returns true if the event kind is a replaceable kind - that is,
// if the newest version is the one that is in force (eg follow lists, relay
// lists, etc.
func (k *T) IsReplaceable() bool {
	return k.K == ProfileMetadata.K || k.K == FollowList.K ||
		(k.K >= ReplaceableStart.K && k.K < ReplaceableEnd.K)
}

// IsParameterizedReplaceable is a kind of event that is one of a group of
// events that replaces based on matching criteria. These are the kinds an naddr
// points at.
func (k *T) IsParameterizedReplaceable() bool {
	return k.K >= ParameterizedReplaceableStart.K &&
		k.K < ParameterizedReplaceableEnd.K
}

// Class names the storage class of the kind: ephemeral, replaceable,
// parameterized replaceable or regular.
func (k *T) Class() string {
	switch {
	case k == nil:
		return ""
	case k.IsEphemeral():
		return "ephemeral"
	case k.IsReplaceable():
		return "replaceable"
	case k.IsParameterizedReplaceable():
		return "parameterized replaceable"
	}
	return "regular"
}

var (
	// ProfileMetadata is an event type that stores user profile data, pet
	// names, bio, lightning address, etc.
	ProfileMetadata = &T{0}
	// TextNote is a standard short text note of plain text a la twitter
	TextNote = &T{1}
	// FollowList an event containing a list of pubkeys of users that should be
	// shown as follows in a timeline.
	FollowList             = &T{3}
	EncryptedDirectMessage = &T{4}
	EventDeletion          = &T{5}
	Repost                 = &T{6}
	Reaction               = &T{7}
	BadgeAward             = &T{8}
	GenericRepost          = &T{16}
	ChannelCreation        = &T{40}
	ChannelMessage         = &T{42}
	GiftWrap               = &T{1059}
	FileMetadata           = &T{1063}
	LiveChatMessage        = &T{1311}
	Reporting              = &T{1984}
	Label                  = &T{1985}
	ZapRequest             = &T{9734}
	Zap                    = &T{9735}
	Highlights             = &T{9882}
	ReplaceableStart       = &T{10000}
	MuteList               = &T{10000}
	PinList                = &T{10001}
	RelayListMetadata      = &T{10002}
	BookmarkList           = &T{10003}
	DMRelaysList           = &T{10050}
	ReplaceableEnd         = &T{20000}
	EphemeralStart         = &T{20000}
	ClientAuthentication   = &T{22242}
	NostrConnect           = &T{24133}
	HTTPAuth               = &T{27235}
	EphemeralEnd           = &T{30000}
	// ParameterizedReplaceableStart is the first of the addressable kinds,
	// identified by pubkey, kind and d tag.
	ParameterizedReplaceableStart = &T{30000}
	FollowSets                    = &T{30000}
	RelaySets                     = &T{30002}
	BookmarkSets                  = &T{30003}
	ProfileBadges                 = &T{30008}
	BadgeDefinition               = &T{30009}
	Article                       = &T{30023}
	DraftLongFormContent          = &T{30024}
	ApplicationSpecificData       = &T{30078}
	LiveEvent                     = &T{30311}
	ClassifiedListing             = &T{30402}
	DateBasedCalendarEvent        = &T{31922}
	TimeBasedCalendarEvent        = &T{31923}
	HandlerInformation            = &T{31990}
	CommunityDefinition           = &T{34550}
	ParameterizedReplaceableEnd   = &T{40000}
)

// Map is the names of the known kinds. It is never written after init.
var Map = map[uint32]string{
	ProfileMetadata.K:         "ProfileMetadata",
	TextNote.K:                "TextNote",
	FollowList.K:              "FollowList",
	EncryptedDirectMessage.K:  "EncryptedDirectMessage",
	EventDeletion.K:           "EventDeletion",
	Repost.K:                  "Repost",
	Reaction.K:                "Reaction",
	BadgeAward.K:              "BadgeAward",
	GenericRepost.K:           "GenericRepost",
	ChannelCreation.K:         "ChannelCreation",
	ChannelMessage.K:          "ChannelMessage",
	GiftWrap.K:                "GiftWrap",
	FileMetadata.K:            "FileMetadata",
	LiveChatMessage.K:         "LiveChatMessage",
	Reporting.K:               "Reporting",
	Label.K:                   "Label",
	ZapRequest.K:              "ZapRequest",
	Zap.K:                     "Zap",
	Highlights.K:              "Highlights",
	MuteList.K:                "MuteList",
	PinList.K:                 "PinList",
	RelayListMetadata.K:       "RelayListMetadata",
	BookmarkList.K:            "BookmarkList",
	DMRelaysList.K:            "DMRelaysList",
	ClientAuthentication.K:    "ClientAuthentication",
	NostrConnect.K:            "NostrConnect",
	HTTPAuth.K:                "HTTPAuth",
	FollowSets.K:              "FollowSets",
	RelaySets.K:               "RelaySets",
	BookmarkSets.K:            "BookmarkSets",
	ProfileBadges.K:           "ProfileBadges",
	BadgeDefinition.K:         "BadgeDefinition",
	Article.K:                 "Article",
	DraftLongFormContent.K:    "DraftLongFormContent",
	ApplicationSpecificData.K: "ApplicationSpecificData",
	LiveEvent.K:               "LiveEvent",
	ClassifiedListing.K:       "ClassifiedListing",
	DateBasedCalendarEvent.K:  "DateBasedCalendarEvent",
	TimeBasedCalendarEvent.K:  "TimeBasedCalendarEvent",
	HandlerInformation.K:      "HandlerInformation",
	CommunityDefinition.K:     "CommunityDefinition",
}
