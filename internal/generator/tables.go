package generator

// Static content tables. Table order and length are part of the
// determinism contract: inserting or reordering entries changes the
// reading every user sees for a given day.

var moods = []string{
	"Energetic", "Romantic", "Creative", "Peaceful", "Adventurous",
	"Reflective", "Passionate", "Balanced", "Inspired", "Confident",
}

var moodEmojis = []string{
	"⚡", "💕", "✨", "🌸", "🌟", "🔮", "🔥", "☯️", "💫", "👑",
}

var luckyTimes = []string{
	"6:00 AM", "9:30 AM", "12:00 PM", "2:45 PM", "5:15 PM",
	"7:30 PM", "10:00 PM", "11:11 AM", "3:33 PM", "8:45 AM",
}

var luckyColorSets = [][]string{
	{"#FF6B6B", "#4ECDC4", "#FFE66D"},
	{"#9B59B6", "#3498DB", "#E74C3C"},
	{"#F9A826", "#95E1D3", "#FFB6C1"},
	{"#A8D8EA", "#AA96DA", "#FCBAD3"},
	{"#FF9A9E", "#FECFEF", "#A18CD1"},
	{"#667eea", "#764ba2", "#f093fb"},
	{"#4facfe", "#00f2fe", "#43e97b"},
	{"#fa709a", "#fee140", "#30cfd0"},
}

var loveTexts = []string{
	"Venus aligns with your heart chakra today, bringing unexpected romantic energy. Open yourself to new connections.",
	"Your magnetic aura is irresistible today. Express your feelings openly and watch love bloom around you.",
	"Deep emotional bonds are forming. Trust your intuition when it comes to matters of the heart.",
	"A surprise message from someone special could change everything. Stay open to unexpected love.",
	"Your romantic life is about to take an exciting turn. Embrace vulnerability and authentic connection.",
	"The stars favor deep, meaningful conversations with your partner or potential love interest today.",
	"Self-love is your superpower today. Nurture yourself and watch as love naturally gravitates toward you.",
	"A past connection may resurface. Consider what lessons this relationship taught you before moving forward.",
}

var careerTexts = []string{
	"Jupiter's influence brings major career opportunities. Stay alert for unexpected doors opening.",
	"Your creative solutions will impress colleagues and superiors alike. Don't hold back your innovative ideas.",
	"Financial abundance is flowing your way. Trust your instincts on business decisions today.",
	"A mentor figure may appear in your professional life. Be open to guidance and wisdom from others.",
	"Your hard work is about to be recognized. Prepare for positive feedback and potential advancement.",
	"Collaborative projects are favored today. Team up with others to achieve remarkable results.",
	"Strategic planning today will yield significant rewards in the coming weeks. Think long-term.",
	"Your professional reputation is shining bright. Use this energy to network and expand your influence.",
}

var healthTexts = []string{
	"Your energy levels are peaking today. Channel this vitality into physical activities you enjoy.",
	"Mind-body balance is essential now. Consider meditation or yoga to align your inner energies.",
	"Pay attention to your rest patterns. Quality sleep will enhance your cosmic receptivity.",
	"Hydration and nourishment are key today. Honor your body with wholesome, energizing foods.",
	"Your intuition about your health is strong. Listen to what your body is telling you.",
	"Physical movement will help release any stagnant energy. Take a walk in nature if possible.",
	"Stress may manifest physically. Practice deep breathing and grounding exercises today.",
	"Your healing energy is amplified. Focus on recovery and gentle self-care practices.",
}

var moneyTexts = []string{
	"Unexpected gains are indicated today. Review pending payments and follow up on what is owed to you.",
	"Hold back on impulsive purchases. Saturn rewards patience and disciplined saving right now.",
	"A small investment made today could grow steadily. Research before you commit, then act with confidence.",
	"Money flows toward clarity. Organize your accounts and a hidden opportunity will reveal itself.",
	"Shared finances need attention. An honest conversation about money strengthens a key relationship.",
	"Your earning potential is highlighted. Negotiate, quote your true worth, and do not undersell yourself.",
	"Avoid lending money today. Generosity is noble but the stars warn of delayed repayment.",
	"An old skill could open a new income stream. Think about what people keep asking you for help with.",
}

var travelTexts = []string{
	"Short journeys bring long benefits today. Say yes to the nearby trip you have been postponing.",
	"Travel plans may shift unexpectedly. Keep your schedule loose and the detour will delight you.",
	"A journey toward water brings mental peace. Even a walk by a river restores your balance.",
	"Delay long-distance travel if you can. Today favors planning routes rather than taking them.",
	"A companion makes today's journey smoother. Travel with someone whose energy complements yours.",
	"Movement stirs inspiration. Change your surroundings and a stubborn problem will untangle itself.",
	"Pack light, in luggage and in thought. What you leave behind today makes room for what you find.",
	"An invitation from afar is on its way. Keep your documents in order and your curiosity awake.",
}

var affirmations = []string{
	"I am worthy of all the beautiful things the universe has in store for me.",
	"Today I choose joy, abundance, and positive energy.",
	"I trust the journey and embrace each moment with gratitude.",
	"My inner light shines brightly and attracts wonderful opportunities.",
	"I am aligned with my highest purpose and deepest intentions.",
	"Every challenge is an opportunity for growth and transformation.",
	"I radiate confidence, love, and positive energy wherever I go.",
	"I am open to receiving all the blessings the cosmos offers today.",
	"My intuition guides me towards my greatest good.",
	"I am surrounded by love, support, and cosmic protection.",
	"Today I manifest my dreams with clarity and intention.",
	"I embrace change as a pathway to my highest potential.",
}

type focusArea struct {
	Area  string
	Emoji string
}

var focusAreas = []focusArea{
	{"Communication", "💬"},
	{"Self-Care", "🧘"},
	{"Finances", "💰"},
	{"Relationships", "👥"},
	{"Creativity", "🎨"},
	{"Health", "💪"},
	{"Learning", "📚"},
	{"Spirituality", "🙏"},
}

var nakshatras = []string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra", "Punarvasu",
	"Pushya", "Ashlesha", "Magha", "Purva Phalguni", "Uttara Phalguni", "Hasta",
	"Chitra", "Swati", "Vishakha", "Anuradha", "Jyeshtha", "Mula", "Purva Ashadha",
	"Uttara Ashadha", "Shravana", "Dhanishta", "Shatabhisha", "Purva Bhadrapada",
	"Uttara Bhadrapada", "Revati",
}

var tithis = []string{
	"Pratipada", "Dwitiya", "Tritiya", "Chaturthi", "Panchami", "Shashthi", "Saptami",
	"Ashtami", "Navami", "Dashami", "Ekadashi", "Dwadashi", "Trayodashi", "Chaturdashi",
	"Purnima", "Amavasya",
}

var dosSets = [][]string{
	{"Start the day with gratitude", "Wear something in your lucky color", "Reach out to an old friend"},
	{"Drink water before every meal", "Write down three priorities", "Take a short walk at sunset"},
	{"Offer help without being asked", "Finish one postponed task", "Spend ten minutes in silence"},
	{"Greet elders with respect", "Donate something you no longer use", "Eat a light, fresh meal"},
	{"Rise before sunrise if possible", "Keep your workspace tidy", "Speak gently in disagreements"},
	{"Light a lamp in the evening", "Review your finances briefly", "Compliment someone sincerely"},
}

var dontsSets = [][]string{
	{"Don't make promises you can't keep", "Avoid heated arguments after dark", "Don't skip meals"},
	{"Avoid signing documents in haste", "Don't dwell on yesterday's mistakes", "Avoid borrowed money"},
	{"Don't interrupt others mid-sentence", "Avoid oily food at night", "Don't ignore a recurring dream"},
	{"Avoid gossip and idle talk", "Don't start new ventures today", "Avoid wearing black"},
	{"Don't postpone health checkups", "Avoid overcommitting your evening", "Don't lend your vehicle"},
	{"Avoid harsh words with family", "Don't check messages during meals", "Avoid shortcuts in work"},
}

var auspiciousTimes = []string{
	"6:15 AM - 7:45 AM", "7:30 AM - 9:00 AM", "9:45 AM - 11:15 AM", "11:30 AM - 1:00 PM",
	"1:45 PM - 3:15 PM", "4:00 PM - 5:30 PM", "5:45 PM - 7:15 PM", "7:30 PM - 9:00 PM",
}

var remedies = []string{
	"Offer water to the rising sun and set your intention for the day.",
	"Feed grains to birds in the morning to ease planetary friction.",
	"Keep a small piece of copper with you to steady scattered energy.",
	"Light a ghee lamp facing east before beginning important work.",
	"Donate something white today, such as rice, cloth, or sweets, to invite calm.",
	"Water a tulsi plant and sit beside it for five quiet breaths.",
	"Wear a thread of your lucky color on your right wrist today.",
	"Place fresh flowers at your doorway to welcome favorable energy.",
}

var mantras = []string{
	"Om Namah Shivaya: I bow to the auspicious one within.",
	"Om Gam Ganapataye Namaha: salutations to the remover of obstacles.",
	"Om Shanti Shanti Shanti: peace in body, speech, and mind.",
	"Gayatri Mantra: may the divine light illuminate my intellect.",
	"Om Namo Narayanaya: I surrender to the sustainer of all.",
	"Om Surya Namaha: salutations to the radiant source of vitality.",
	"Om Shri Mahalakshmyai Namaha: invoking abundance and grace.",
	"Om Aim Saraswatyai Namaha: invoking wisdom and clear expression.",
}
