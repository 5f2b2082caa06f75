package bot

// USER-FACING TEXTS

// Main menu buttons. Presses arrive as plain text messages.
const (
	ButtonPlaceOrder    = "📦 Place New Custom Order"
	ButtonUploadReceipt = "🖼️ Upload Receipt"
)

// Inline callback payloads.
const (
	callbackAcceptPrefix = "accept_order_"
	callbackSkipPhoto    = "skip_photo"
	callbackRejectOrder  = "reject_order"
)

// Sentinels recorded when no reference photo was supplied. Kept distinct so
// admins can tell "never asked to skip" from an explicit skip.
const (
	PhotoNotProvided = "N/A"
	PhotoSkipped     = "Skipped by user"
)

const welcomeMessage = `👋 Welcome to *NAYA wear*! ✨
We are around Ledeta Flint Stone Homes.

We design elegant, high-quality fashion pieces made just for you.
Please note: all custom orders take *5–7 days* to complete.

---
*Payment Confirmation*
To confirm your order, we kindly ask for a small advance payment.
Only *200 birr*
Payment Account Number: CBE ` + "`1000495773268`" + ` Yanet Tariku Biruk

Once payment is complete, please use the *Upload Receipt* button to send your bank slip screenshot.
---

Click the *Place New Custom Order* button to start your request!`

// Intake questions, asked in order.
const (
	questionOrderType = `*Question 1:* What would you like to order? (e.g. dress, suit, pants, top, or custom design)`
	questionSize      = `*Question 2:* 📏 Please share your size or measurements. (small, medium, large, XL, etc.)`
	questionColor     = `*Question 3:* 🎨 What color or fabric do you prefer?`
	questionPhoto     = `*Question 4:* 📸 Would you like to send a reference photo? (optional - you can upload it here or type "skip")`
	questionPhone     = `*Question 5:* 📞 Please share your phone number so we can confirm your order.`
)

const (
	msgOrderIntro = "Let’s begin your order request! Please answer the following questions 👇\n\n" + questionOrderType

	msgReceiptPhonePrompt = `To verify your payment, please first share the *phone number* associated with your order:`

	msgPhotoReceived = `📸 Reference photo received! Thank you.`
	msgPhotoSkipped  = `Photo step skipped.`
	msgPhotoGuide    = `Please either upload a photo or tap the '➡️ Skip Photo' button, or type 'skip' to continue.`

	msgReceiptPhotoOnly = `Please upload the *screenshot* of your bank receipt/slip as a photo to confirm the payment.`

	msgNoSession      = "I don't have an active session for you. Please use the '📦 Place New Custom Order' or '🖼️ Upload Receipt' button to start."
	msgNoPhotoSession = "I don't have an active order or receipt session for you. Please use the menu buttons to start."
	msgStrayPhoto     = `Got your image! Please continue answering the questions based on the last prompt.`
	msgStrayText      = `I'm not sure what to do with that input right now. Please continue answering the current question.`

	msgReceiptAck = `✅ Receipt uploaded successfully! Thank you for confirming your advance payment. We will now cross-reference this with your custom order details.`

	msgUnexpectedError = `⚠️ Oops! I ran into an unexpected error while processing your request. Please try again or use the main menu buttons.`

	msgHelp = `Available commands:
/start - Show the welcome message and main menu
/help - Show this help

Use the menu buttons to place a custom order or upload a payment receipt.`

	msgUnknownCommand = `Unknown command. Please use /start to open the main menu.`
)
